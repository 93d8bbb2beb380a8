// Package forms implements the website's form intake pipeline: per-form-type
// validation schemas, field-error aggregation, and best-effort email
// notification of validated submissions.
package forms

// FormType discriminates which validation schema and notification template
// apply to a submission. Values match the formType field submitted by the
// website forms exactly.
type FormType string

const (
	FormTypeRequestDemo          FormType = "Request a Demo"
	FormTypeStartupPartnership   FormType = "Startup Partnership"
	FormTypeIndustryPartnership  FormType = "Industry Partnership"
	FormTypeCanadianPartnerships FormType = "Canadian Partnerships"
	FormTypeContactUs            FormType = "Contact Us"
)

// FieldKind selects how a field's value is validated.
type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindEnum
)

// FieldSpec describes a single field of a form schema.
type FieldSpec struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	// Allowed is the closed value set for KindEnum fields (case-sensitive).
	Allowed []string
	// Message is reported for any violation of this field. Enum fields reuse
	// the required-style message for out-of-set values, matching the wording
	// the website has always shown.
	Message string
}

// Schema is the immutable, ordered field list for one form type. Field order
// determines rendering order in the notification body.
type Schema struct {
	Type   FormType
	Fields []FieldSpec
}
