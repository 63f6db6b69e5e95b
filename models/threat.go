package models

// STRIDE threat categories. The model is instructed to use exactly these
// values in the "Threat Type" field.
const (
	ThreatTypeSpoofing              = "Spoofing"
	ThreatTypeTampering             = "Tampering"
	ThreatTypeRepudiation           = "Repudiation"
	ThreatTypeInformationDisclosure = "Information Disclosure"
	ThreatTypeDenialOfService       = "Denial of Service"
	ThreatTypeElevationOfPrivilege  = "Elevation of Privilege"
)

// StrideCategories lists the six valid "Threat Type" values.
var StrideCategories = []string{
	ThreatTypeSpoofing,
	ThreatTypeTampering,
	ThreatTypeRepudiation,
	ThreatTypeInformationDisclosure,
	ThreatTypeDenialOfService,
	ThreatTypeElevationOfPrivilege,
}

// ThreatEntry is one identified threat in the model output
type ThreatEntry struct {
	ThreatType      string `json:"Threat Type"`
	Scenario        string `json:"Scenario"`
	PotentialImpact string `json:"Potential Impact"`
}

// ThreatModelReport is the JSON shape the model is asked to produce
type ThreatModelReport struct {
	ThreatModel            []ThreatEntry `json:"threat_model"`
	ImprovementSuggestions []string      `json:"improvement_suggestions"`
}

// RawTextResponse wraps model output that could not be parsed as JSON.
// Returned with status 200, not as an error.
type RawTextResponse struct {
	RawText string `json:"raw_text"`
}

// ImagePart is the uploaded architecture diagram, read fully into memory
type ImagePart struct {
	MimeType string
	Data     []byte
}

// ThreatAnalysisInput carries the validated form fields into the service layer
type ThreatAnalysisInput struct {
	ApplicationType        string
	AuthenticationMethods  string
	InternetExposed        string
	SensitiveData          string
	ApplicationDescription string
	PromptLanguage         string
	Image                  ImagePart
}
