package cff

import "strings"

// IdentifierTypes is the defined set of identifier type strings.
var IdentifierTypes = []string{"doi", "other", "swh", "url"}

// IdentifierRelations is the defined set of identifier relation strings,
// available from CFF 1.3.0 onwards. The values follow the DataCite
// relationType vocabulary.
var IdentifierRelations = []string{
	"cites", "collects", "compiles", "continues", "describes", "documents",
	"hasMetadata", "hasPart", "hasTranslation", "hasVersion",
	"isAlternateIdentifier", "isCitedBy", "isCollectedBy", "isCompiledBy",
	"isContinuedBy", "isDerivedFrom", "isDescribedBy", "isDocumentedBy",
	"isIdenticalTo", "isMetadataFor", "isNewVersionOf", "isObsoletedBy",
	"isOriginalFormOf", "isPartOf", "isPreviousVersionOf", "isPublishedIn",
	"isReferencedBy", "isRequiredBy", "isReviewedBy", "isSourceOf",
	"isSupplementTo", "isSupplementedBy", "isTranslationOf", "isVariantFormOf",
	"isVersionOf", "obsoletes", "references", "requires", "reviews",
}

var identifierFields = []string{"description", "relation", "type", "value"}

// Identifier represents a typed identifier, such as a DOI or a Software
// Heritage ID. The type and relation fields are restricted to defined
// enumerations; assigning a value outside the enumeration is a silent
// no-op, leaving the previous value in place.
type Identifier struct {
	fields *container
}

// NewIdentifier creates an Identifier with the supplied type and value. If
// the type is not a defined identifier type, neither field is set.
func NewIdentifier(identifierType, value string) *Identifier {
	i := &Identifier{fields: newContainer("identifier", identifierFields, nil, nil)}
	i.SetType(identifierType)
	if i.fields.has("type") {
		i.fields.fields["value"] = value
	}
	return i
}

// identifierFromFields wraps an already-parsed raw mapping. Only
// allow-listed fields are retained.
func identifierFromFields(m map[string]any) *Identifier {
	i := &Identifier{fields: newContainer("identifier", identifierFields, nil, nil)}
	for k, v := range m {
		if _, ok := i.fields.allowed[k]; ok {
			i.fields.fields[k] = v
		}
	}
	return i
}

// Get reads an allow-listed field. Unset fields read as "".
func (i *Identifier) Get(field string) (any, error) { return i.fields.get(field) }

// Set writes an allow-listed field. Writes to "type" and "relation" go
// through their enum-checked setters.
func (i *Identifier) Set(field string, value any) error {
	switch canonicalField(field) {
	case "type":
		if s, ok := value.(string); ok {
			i.SetType(s)
			return nil
		}
		return nil
	case "relation":
		if s, ok := value.(string); ok {
			i.SetRelation(s)
			return nil
		}
		return nil
	default:
		return i.fields.set(field, value)
	}
}

// SetType sets the identifier type. Input is lower-cased; values outside
// the defined set are ignored.
func (i *Identifier) SetType(identifierType string) {
	identifierType = strings.ToLower(identifierType)
	for _, t := range IdentifierTypes {
		if t == identifierType {
			i.fields.fields["type"] = identifierType
			return
		}
	}
}

// SetRelation sets the identifier relation. Values outside the defined set
// are ignored.
func (i *Identifier) SetRelation(relation string) {
	for _, r := range IdentifierRelations {
		if r == relation {
			i.fields.fields["relation"] = relation
			return
		}
	}
}

// Type returns the identifier type, or "".
func (i *Identifier) Type() string { return i.fields.str("type") }

// Value returns the identifier value, or "".
func (i *Identifier) Value() string { return i.fields.str("value") }

// Description returns the identifier description, or "".
func (i *Identifier) Description() string { return i.fields.str("description") }

// Relation returns the identifier relation, or "".
func (i *Identifier) Relation() string { return i.fields.str("relation") }

// Fields flattens the Identifier back to a raw field mapping.
func (i *Identifier) Fields() map[string]any { return i.fields.rawFields() }
