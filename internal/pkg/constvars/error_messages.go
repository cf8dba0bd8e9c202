package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"required_if":      "is required when %s is %s",
	"required_with":    "is required when %s is present",
	"required_without": "is required when %s is not present",
	"excluded_with":    "must not be sent together with %s",
	"iso_date":         "must be a date in YYYY-MM-DD format",
	"stock_source":     "must be either 'home' or 'family'",
	"extra_cost_label": "is required when extra cost amount is greater than zero",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"oneof":            true,
	"required_with":    true,
	"required_without": true,
	"excluded_with":    true,
}
