package generator

// Settings holds the target-language primitive mapping choices for one
// generation run. Pure data; the zero value is not useful, use
// DefaultSettings.
type Settings struct {
	// Namespace is the C# namespace wrapping the generated declarations
	Namespace string

	// ArrayType is the container type representing a sequence
	ArrayType string

	// DictionaryType is the container type representing a string-keyed map
	DictionaryType string

	// DateType is the scalar type for "date" formatted strings
	DateType string

	// DateTimeType is the scalar type for "date-time" formatted strings
	DateTimeType string

	// TimeType is the scalar type for "time" formatted strings
	TimeType string

	// TimeSpanType is the scalar type for duration formatted strings
	TimeSpanType string

	// AnyType is the universal top type used for "accepts anything" nodes
	// and underspecified containers
	AnyType string

	// NullableDictionaryValues makes dictionary value types nullable
	NullableDictionaryValues bool
}

// DefaultSettings returns the conventional C# mapping: observable collections
// for sequences, Dictionary for maps, DateTime/TimeSpan scalars, and object
// as the top type.
func DefaultSettings() *Settings {
	return &Settings{
		Namespace:      "Generated",
		ArrayType:      "ObservableCollection",
		DictionaryType: "Dictionary",
		DateType:       "DateTime",
		DateTimeType:   "DateTime",
		TimeType:       "TimeSpan",
		TimeSpanType:   "TimeSpan",
		AnyType:        "object",
	}
}
