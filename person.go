package cff

// personFields is the set of fields a Person may carry.
var personFields = []string{
	"address", "affiliation", "alias", "city", "country", "email",
	"family-names", "fax", "given-names", "name-particle", "name-suffix",
	"orcid", "post-code", "region", "tel", "website",
}

// Person represents a human actor: an author, contact, editor, etc.
//
// A Person has no required fields. Fields not listed in its allow-list
// cannot be read or written; unset fields read as the empty string.
type Person struct {
	fields *container
}

// NewPerson creates a Person with the supplied given and family names.
func NewPerson(givenNames, familyNames string) *Person {
	p := &Person{fields: newContainer("person", personFields, nil, nil)}
	p.fields.fields["given-names"] = givenNames
	p.fields.fields["family-names"] = familyNames
	return p
}

// personFromFields wraps an already-parsed raw mapping. Only allow-listed
// fields are retained.
func personFromFields(m map[string]any) *Person {
	p := &Person{fields: newContainer("person", personFields, nil, nil)}
	for k, v := range m {
		if _, ok := p.fields.allowed[k]; ok {
			p.fields.fields[k] = v
		}
	}
	return p
}

// Get reads an allow-listed field. Unset fields read as "".
func (p *Person) Get(field string) (any, error) { return p.fields.get(field) }

// Set writes an allow-listed field.
func (p *Person) Set(field string, value any) error { return p.fields.set(field, value) }

// Fields flattens the Person back to a raw field mapping.
func (p *Person) Fields() map[string]any { return p.fields.rawFields() }

// IsEmpty always returns false: a Person is never considered absent.
func (p *Person) IsEmpty() bool { return false }

func (p *Person) isActor() {}

// GivenNames returns the person's given names, or "".
func (p *Person) GivenNames() string { return p.fields.str("given-names") }

// FamilyNames returns the person's family names, or "".
func (p *Person) FamilyNames() string { return p.fields.str("family-names") }

// NameParticle returns the name particle (e.g. "von"), or "".
func (p *Person) NameParticle() string { return p.fields.str("name-particle") }

// NameSuffix returns the name suffix (e.g. "Jr"), or "".
func (p *Person) NameSuffix() string { return p.fields.str("name-suffix") }

// Alias returns the person's alias, or "".
func (p *Person) Alias() string { return p.fields.str("alias") }

// Affiliation returns the person's affiliation, or "".
func (p *Person) Affiliation() string { return p.fields.str("affiliation") }

// Email returns the person's email address, or "".
func (p *Person) Email() string { return p.fields.str("email") }

// ORCID returns the person's ORCID identifier, or "".
func (p *Person) ORCID() string { return p.fields.str("orcid") }
