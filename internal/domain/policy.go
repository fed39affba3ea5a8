package domain

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
)

// PolicyDocument is the stored form of a policy section: option name -> value.
type PolicyDocument map[string]any

// Clone returns a shallow copy of the document.
func (d PolicyDocument) Clone() PolicyDocument {
	out := make(PolicyDocument, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Merge returns a new document where every key of partial replaces the
// corresponding key of d. Values are replaced wholesale; arrays and nested
// objects are never merged element-wise.
func (d PolicyDocument) Merge(partial PolicyDocument) PolicyDocument {
	out := d.Clone()
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// PolicyRecord is a persisted section with its own version counter.
type PolicyRecord struct {
	Section   PolicySection
	Document  PolicyDocument
	Version   int
	UpdatedAt time.Time
	UpdatedBy *uuid.UUID
}

// ---------------------------------------------------------------------------
// Typed sections. Known keys are decoded into fields; anything else lands in
// Extra and is carried along unvalidated.
// ---------------------------------------------------------------------------

// BrandingPolicy controls how the console presents itself.
type BrandingPolicy struct {
	SiteName     string         `mapstructure:"siteName"`
	PrimaryColor string         `mapstructure:"primaryColor"`
	LogoURL      string         `mapstructure:"logoUrl"`
	SupportEmail string         `mapstructure:"supportEmail"`
	Extra        map[string]any `mapstructure:",remain"`
}

// AcademicPolicy holds institution-wide academic parameters.
type AcademicPolicy struct {
	AcademicYear          string         `mapstructure:"academicYear"`
	CurrentSemester       int            `mapstructure:"currentSemester"`
	MaxCreditsPerSemester int            `mapstructure:"maxCreditsPerSemester"`
	GradingScale          string         `mapstructure:"gradingScale"`
	Extra                 map[string]any `mapstructure:",remain"`
}

// CalendarPolicy holds term dates and holidays (YYYY-MM-DD).
type CalendarPolicy struct {
	TermStart string         `mapstructure:"termStart"`
	TermEnd   string         `mapstructure:"termEnd"`
	Holidays  []string       `mapstructure:"holidays"`
	Extra     map[string]any `mapstructure:",remain"`
}

// UserPolicy governs account creation and sessions.
type UserPolicy struct {
	AllowSelfRegistration bool           `mapstructure:"allowSelfRegistration"`
	DefaultRole           string         `mapstructure:"defaultRole"`
	PasswordMinLength     int            `mapstructure:"passwordMinLength"`
	SessionTimeoutMinutes int            `mapstructure:"sessionTimeoutMinutes"`
	Extra                 map[string]any `mapstructure:",remain"`
}

// GrievancePolicy governs SLA windows, escalation and auto-close of grievances.
type GrievancePolicy struct {
	SLALow             int            `mapstructure:"slaLow"`
	SLAMedium          int            `mapstructure:"slaMedium"`
	SLAHigh            int            `mapstructure:"slaHigh"`
	EscalationEnabled  bool           `mapstructure:"escalationEnabled"`
	AutoCloseAfterDays int            `mapstructure:"autoCloseAfterDays"`
	Categories         []string       `mapstructure:"categories"`
	Extra              map[string]any `mapstructure:",remain"`
}

// OpportunityPolicy governs approval and expiry of opportunity postings.
type OpportunityPolicy struct {
	RequireApproval bool           `mapstructure:"requireApproval"`
	AutoExpireDays  int            `mapstructure:"autoExpireDays"`
	AllowedTypes    []string       `mapstructure:"allowedTypes"`
	Tags            []string       `mapstructure:"tags"`
	Extra           map[string]any `mapstructure:",remain"`
}

// ---------------------------------------------------------------------------
// Built-in defaults
// ---------------------------------------------------------------------------

// DefaultPolicyDocument returns a fresh copy of the built-in default for section.
func DefaultPolicyDocument(section PolicySection) PolicyDocument {
	switch section {
	case PolicySectionBranding:
		return PolicyDocument{
			"siteName":     "Campus Console",
			"primaryColor": "#2563eb",
			"logoUrl":      "",
			"supportEmail": "",
		}
	case PolicySectionAcademic:
		return PolicyDocument{
			"academicYear":          "2025-26",
			"currentSemester":       1,
			"maxCreditsPerSemester": 24,
			"gradingScale":          "10-point",
		}
	case PolicySectionCalendar:
		return PolicyDocument{
			"termStart": "",
			"termEnd":   "",
			"holidays":  []string{},
		}
	case PolicySectionUserPolicy:
		return PolicyDocument{
			"allowSelfRegistration": false,
			"defaultRole":           string(UserRoleStudent),
			"passwordMinLength":     8,
			"sessionTimeoutMinutes": 60,
		}
	case PolicySectionGrievance:
		return PolicyDocument{
			"slaLow":             14,
			"slaMedium":          7,
			"slaHigh":            3,
			"escalationEnabled":  true,
			"autoCloseAfterDays": 30,
			"categories": []string{
				"Academic", "Examination", "Hostel", "Infrastructure",
				"Administration", "Harassment", "Other",
			},
		}
	case PolicySectionOpportunity:
		return PolicyDocument{
			"requireApproval": false,
			"autoExpireDays":  60,
			"allowedTypes":    []string{"Internship", "Hackathon", "Project", "Scholarship", "Workshop"},
			"tags":            []string{"AI", "Web", "Research", "Design", "Finance"},
		}
	}
	return PolicyDocument{}
}

// ---------------------------------------------------------------------------
// Decoding
// ---------------------------------------------------------------------------

func decodeSection(doc PolicyDocument, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		ZeroFields: true,
		DecodeHook: mapstructure.DecodeHookFuncType(wholeNumbers),
	})
	if err != nil {
		return fmt.Errorf("policy decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(doc)); err != nil {
		return NewValidationError("document", err.Error())
	}
	return nil
}

// wholeNumbers rejects fractional or non-finite floats bound for integer
// fields. Without it mapstructure truncates 2.9 to 2.
func wholeNumbers(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() < reflect.Int || to.Kind() > reflect.Uint64 {
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("must be a whole number, got %v", f)
	}
	return data, nil
}

// DecodeBrandingPolicy decodes and validates a branding document.
func DecodeBrandingPolicy(doc PolicyDocument) (BrandingPolicy, error) {
	var p BrandingPolicy
	if err := decodeSection(doc, &p); err != nil {
		return BrandingPolicy{}, err
	}
	return p, p.Validate()
}

// DecodeAcademicPolicy decodes and validates an academic document.
func DecodeAcademicPolicy(doc PolicyDocument) (AcademicPolicy, error) {
	var p AcademicPolicy
	if err := decodeSection(doc, &p); err != nil {
		return AcademicPolicy{}, err
	}
	return p, p.Validate()
}

// DecodeCalendarPolicy decodes and validates a calendar document.
func DecodeCalendarPolicy(doc PolicyDocument) (CalendarPolicy, error) {
	var p CalendarPolicy
	if err := decodeSection(doc, &p); err != nil {
		return CalendarPolicy{}, err
	}
	return p, p.Validate()
}

// DecodeUserPolicy decodes and validates a user-policy document.
func DecodeUserPolicy(doc PolicyDocument) (UserPolicy, error) {
	var p UserPolicy
	if err := decodeSection(doc, &p); err != nil {
		return UserPolicy{}, err
	}
	return p, p.Validate()
}

// DecodeGrievancePolicy decodes and validates a grievance document.
func DecodeGrievancePolicy(doc PolicyDocument) (GrievancePolicy, error) {
	var p GrievancePolicy
	if err := decodeSection(doc, &p); err != nil {
		return GrievancePolicy{}, err
	}
	return p, p.Validate()
}

// DecodeOpportunityPolicy decodes and validates an opportunity document.
func DecodeOpportunityPolicy(doc PolicyDocument) (OpportunityPolicy, error) {
	var p OpportunityPolicy
	if err := decodeSection(doc, &p); err != nil {
		return OpportunityPolicy{}, err
	}
	return p, p.Validate()
}

// ValidatePolicyDocument type-checks the known keys of doc for section.
// Unknown keys are accepted as-is.
func ValidatePolicyDocument(section PolicySection, doc PolicyDocument) error {
	var err error
	switch section {
	case PolicySectionBranding:
		_, err = DecodeBrandingPolicy(doc)
	case PolicySectionAcademic:
		_, err = DecodeAcademicPolicy(doc)
	case PolicySectionCalendar:
		_, err = DecodeCalendarPolicy(doc)
	case PolicySectionUserPolicy:
		_, err = DecodeUserPolicy(doc)
	case PolicySectionGrievance:
		_, err = DecodeGrievancePolicy(doc)
	case PolicySectionOpportunity:
		_, err = DecodeOpportunityPolicy(doc)
	default:
		err = NewValidationError("section", "unknown policy section")
	}
	return err
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

const dateLayout = "2006-01-02"

func (p BrandingPolicy) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(p.SiteName) == "" {
		errs = append(errs, FieldError{Field: "siteName", Message: "required"})
	} else if len(p.SiteName) > 120 {
		errs = append(errs, FieldError{Field: "siteName", Message: "too long"})
	}
	if p.PrimaryColor != "" && !hexColorRe.MatchString(p.PrimaryColor) {
		errs = append(errs, FieldError{Field: "primaryColor", Message: "must be a hex color"})
	}
	if p.SupportEmail != "" && !strings.Contains(p.SupportEmail, "@") {
		errs = append(errs, FieldError{Field: "supportEmail", Message: "invalid email"})
	}
	return collect(errs)
}

func (p AcademicPolicy) Validate() error {
	var errs []FieldError
	if p.CurrentSemester < 1 || p.CurrentSemester > 12 {
		errs = append(errs, FieldError{Field: "currentSemester", Message: "must be between 1 and 12"})
	}
	if p.MaxCreditsPerSemester < 1 {
		errs = append(errs, FieldError{Field: "maxCreditsPerSemester", Message: "must be at least 1"})
	}
	switch p.GradingScale {
	case "10-point", "4-point", "percentage":
	default:
		errs = append(errs, FieldError{Field: "gradingScale", Message: "must be 10-point, 4-point or percentage"})
	}
	return collect(errs)
}

func (p CalendarPolicy) Validate() error {
	var errs []FieldError
	start, startErr := parseOptionalDate(p.TermStart)
	if startErr != nil {
		errs = append(errs, FieldError{Field: "termStart", Message: "must be YYYY-MM-DD"})
	}
	end, endErr := parseOptionalDate(p.TermEnd)
	if endErr != nil {
		errs = append(errs, FieldError{Field: "termEnd", Message: "must be YYYY-MM-DD"})
	}
	if startErr == nil && endErr == nil && !start.IsZero() && !end.IsZero() && !end.After(start) {
		errs = append(errs, FieldError{Field: "termEnd", Message: "must be after termStart"})
	}
	for i, h := range p.Holidays {
		if _, err := time.Parse(dateLayout, h); err != nil {
			errs = append(errs, FieldError{Field: fmt.Sprintf("holidays[%d]", i), Message: "must be YYYY-MM-DD"})
		}
	}
	return collect(errs)
}

func (p UserPolicy) Validate() error {
	var errs []FieldError
	if !UserRole(p.DefaultRole).IsValid() {
		errs = append(errs, FieldError{Field: "defaultRole", Message: "invalid role"})
	} else if UserRole(p.DefaultRole).IsAdmin() {
		errs = append(errs, FieldError{Field: "defaultRole", Message: "cannot default to admin"})
	}
	if p.PasswordMinLength < 6 || p.PasswordMinLength > 128 {
		errs = append(errs, FieldError{Field: "passwordMinLength", Message: "must be between 6 and 128"})
	}
	if p.SessionTimeoutMinutes < 5 {
		errs = append(errs, FieldError{Field: "sessionTimeoutMinutes", Message: "must be at least 5"})
	}
	return collect(errs)
}

func (p GrievancePolicy) Validate() error {
	var errs []FieldError
	for _, f := range []struct {
		name string
		v    int
	}{
		{"slaLow", p.SLALow},
		{"slaMedium", p.SLAMedium},
		{"slaHigh", p.SLAHigh},
		{"autoCloseAfterDays", p.AutoCloseAfterDays},
	} {
		if f.v < 1 {
			errs = append(errs, FieldError{Field: f.name, Message: "must be at least 1 day"})
		}
	}
	errs = append(errs, validateTaxonomy("categories", p.Categories, true)...)
	return collect(errs)
}

func (p OpportunityPolicy) Validate() error {
	var errs []FieldError
	if p.AutoExpireDays < 1 {
		errs = append(errs, FieldError{Field: "autoExpireDays", Message: "must be at least 1 day"})
	}
	errs = append(errs, validateTaxonomy("allowedTypes", p.AllowedTypes, true)...)
	errs = append(errs, validateTaxonomy("tags", p.Tags, false)...)
	return collect(errs)
}

// HasCategory reports whether category is part of the taxonomy.
func (p GrievancePolicy) HasCategory(category string) bool {
	return containsFold(p.Categories, category)
}

// AllowsType reports whether an opportunity type is allowed.
func (p OpportunityPolicy) AllowsType(typ string) bool {
	return containsFold(p.AllowedTypes, typ)
}

func validateTaxonomy(field string, values []string, required bool) []FieldError {
	if required && len(values) == 0 {
		return []FieldError{{Field: field, Message: "at least one required"}}
	}
	var errs []FieldError
	seen := make(map[string]struct{}, len(values))
	for i, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "cannot be empty"})
			continue
		}
		if _, dup := seen[key]; dup {
			errs = append(errs, FieldError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "duplicate value"})
		}
		seen[key] = struct{}{}
	}
	return errs
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func collect(errs []FieldError) error {
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
