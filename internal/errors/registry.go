package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Errors (E100-E119)
	// ============================================

	"E101": {
		Category:   CategoryMarkup,
		Message:    "Document could not be parsed",
		Detail:     "The element description is not valid YAML or JSON.",
		Suggestion: "Check indentation and quoting near the reported line.",
	},
	"E102": {
		Category:   CategoryMarkup,
		Message:    "Element is missing a tag",
		Detail:     `Every element mapping needs a "tag" field.`,
		Suggestion: "Add tag: div, or write the child as a plain string.",
	},
	"E103": {
		Category: CategoryMarkup,
		Message:  "Invalid children",
		Detail:   `The "children" field must be a list or a single child value.`,
	},
	"E104": {
		Category: CategoryMarkup,
		Message:  "Invalid props",
		Detail:   `The "props" field must be a mapping from names to values.`,
	},
	"E105": {
		Category: CategoryMarkup,
		Message:  "Empty document",
		Detail:   "The document contains no element.",
	},
	"E106": {
		Category: CategoryMarkup,
		Message:  "Document nested too deeply",
		Detail:   "The element tree exceeds the maximum nesting depth.",
	},
	"E107": {
		Category:   CategoryMarkup,
		Message:    "Document expands to too many nodes",
		Detail:     "Aliases are expanded at every use, and the result exceeds the node limit.",
		Suggestion: "Write repeated children out, or split the document.",
	},
	"E108": {
		Category: CategoryMarkup,
		Message:  "Alias cycle",
		Detail:   "An element or child list contains an alias to itself.",
	},

	// ============================================
	// Component Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryComponent,
		Message:  "Invalid component definition",
		Detail:   "A component definition needs a name and an optional defaultProps mapping.",
	},
	"E121": {
		Category:   CategoryComponent,
		Message:    "Reserved component name",
		Detail:     `"Fragment" is built in and cannot be registered.`,
		Suggestion: "Pick another name for the component.",
	},
	"E122": {
		Category: CategoryComponent,
		Message:  "Component registered twice",
		Detail:   "A component with this name is already registered.",
	},

	// ============================================
	// Config Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryConfig,
		Message:  "Config file could not be read",
		Detail:   "vnode.json exists but could not be read or parsed.",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// Request Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryRequest,
		Message:  "Request body could not be read",
	},
	"E161": {
		Category:   CategoryRequest,
		Message:    "Request body too large",
		Suggestion: "Split the document or raise server.maxBodyBytes in vnode.json.",
	},
	"E162": {
		Category: CategoryRequest,
		Message:  "Request body is not valid JSON",
	},
	"E163": {
		Category: CategoryRequest,
		Message:  "No such route",
	},

	// ============================================
	// Internal Errors (E180-E199)
	// ============================================

	"E180": {
		Category: CategoryInternal,
		Message:  "Internal error",
		Detail:   "The request failed for a reason unrelated to its content.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
