package services

import "saas-docvault-platform/models"

// Workbook layout. Sheet and header names are the exact, case-sensitive
// strings the template ships with; imports are matched against them
// bit-exact.
const (
	SheetSpecifications = "Specificaties"
	SheetLinks          = "Bronverwijzingen"
	SheetFiles          = "Bijlagen"
)

// Specification sheet headers
const (
	HeaderSection     = "Hoofdstuk"
	HeaderStage       = "Niveau"
	HeaderClient      = "Gemeente"
	HeaderLocation    = "Woonkern"
	HeaderArea        = "Gebiedsoort/Str"
	HeaderTopic       = "Onderwerp"
	HeaderSubtopic    = "Subonderwerp"
	HeaderEnforcement = "Hardheid"
	HeaderLinkRefs    = "Bronv"
	HeaderFileRefs    = "Bijlage(-n)"
	HeaderRequirement = "Eis"
)

// Links and files sheet headers
const (
	HeaderExternalID  = "It"
	HeaderDescription = "Omschrijving"
	HeaderURL         = "Url"
	HeaderFilePath    = "Bestandspad"
	HeaderFileType    = "Bestandstype"
)

// RequiredHeaders keys each sheet to its required header list, in
// template column order.
var RequiredHeaders = map[string][]string{
	SheetSpecifications: {
		HeaderSection, HeaderStage, HeaderClient, HeaderLocation,
		HeaderArea, HeaderTopic, HeaderSubtopic, HeaderEnforcement,
		HeaderLinkRefs, HeaderFileRefs, HeaderRequirement,
	},
	SheetLinks: {HeaderExternalID, HeaderDescription, HeaderURL},
	SheetFiles: {HeaderExternalID, HeaderDescription, HeaderFilePath, HeaderFileType},
}

// Normalized field keys, independent of the sheet's column language.
const (
	FieldSection     = "Section"
	FieldStage       = "Stage"
	FieldClient      = "Client"
	FieldLocation    = "Location"
	FieldArea        = "Area"
	FieldTopic       = "Topic"
	FieldSubtopic    = "Subtopic"
	FieldEnforcement = "EnforcementLevel"
	FieldLinkRefs    = "LinkRefs"
	FieldFileRefs    = "FileRefs"
	FieldDescription = "Description"
	FieldExternalID  = "ExternalID"
	FieldTitle       = "Title"
	FieldURL         = "Url"
	FieldFilePath    = "FilePath"
	FieldFileType    = "FileType"
)

// ColumnMapping pairs a normalized output key with its source header.
type ColumnMapping struct {
	Key    string
	Header string
}

var specificationMappings = []ColumnMapping{
	{FieldSection, HeaderSection},
	{FieldStage, HeaderStage},
	{FieldClient, HeaderClient},
	{FieldLocation, HeaderLocation},
	{FieldArea, HeaderArea},
	{FieldTopic, HeaderTopic},
	{FieldSubtopic, HeaderSubtopic},
	{FieldEnforcement, HeaderEnforcement},
	{FieldLinkRefs, HeaderLinkRefs},
	{FieldFileRefs, HeaderFileRefs},
	{FieldDescription, HeaderRequirement},
}

var linkMappings = []ColumnMapping{
	{FieldExternalID, HeaderExternalID},
	{FieldTitle, HeaderDescription},
	{FieldURL, HeaderURL},
}

var fileMappings = []ColumnMapping{
	{FieldExternalID, HeaderExternalID},
	{FieldTitle, HeaderDescription},
	{FieldFilePath, HeaderFilePath},
	{FieldFileType, HeaderFileType},
}

// catalogFields orders the single-valued specification fields and ties
// each to its catalog dimension. Junction rows are written in this
// order.
var catalogFields = []struct {
	Field     string
	Dimension models.Dimension
}{
	{FieldSection, models.DimensionSection},
	{FieldStage, models.DimensionStage},
	{FieldClient, models.DimensionClient},
	{FieldLocation, models.DimensionLocation},
	{FieldArea, models.DimensionArea},
	{FieldTopic, models.DimensionTopic},
	{FieldSubtopic, models.DimensionSubtopic},
	{FieldEnforcement, models.DimensionEnforcementLevel},
}
