// Package generator resolves schema nodes to C# type expressions and renders
// named type declarations.
//
// The package is built around four cooperating pieces:
//
//   - TypeResolver maps a schema node to a type expression string: either an
//     inline primitive expression ("string", "long?", "Dictionary<string, bool>")
//     or the name of a generated type.
//   - TypeNameAllocator issues one stable name per schema identity for the
//     lifetime of a generation run, which is what makes cyclic schema graphs
//     resolvable.
//   - TypeRegistry owns the mapping from allocated name to the generator
//     responsible for that type's declaration. Names are reserved before
//     member resolution so self-references terminate, and a reserved name can
//     be rebound in place when a later visit carries better information.
//   - ClassGenerator and EnumGenerator hold per-type state and produce
//     rendering models for the template registry on demand.
//
// A generation run is single-threaded and owns isolated allocator and
// registry instances; no naming state persists across runs.
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("schemas.yaml"),
//		generator.WithNamespace("PetStore.Models"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Source)
package generator
