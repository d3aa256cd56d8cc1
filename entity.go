package cff

import "time"

// entityFields is the set of fields an Entity may carry.
var entityFields = []string{
	"address", "alias", "city", "country", "date-end", "date-start",
	"email", "fax", "location", "name", "orcid", "post-code", "region",
	"tel", "website",
}

var entityDateFields = []string{"date-end", "date-start"}

// Entity represents a non-human actor: an organization, a conference, a
// publishing venue. Like a Person, an Entity can fill any actor role.
//
// The `date-start` and `date-end` fields are date-typed: assigning an
// unparsable string returns an InvalidDateError, while reading previously
// stored bad data quietly returns the zero time.
type Entity struct {
	fields *container
}

// NewEntity creates an Entity with the supplied name.
func NewEntity(name string) *Entity {
	e := &Entity{fields: newContainer("entity", entityFields, nil, entityDateFields)}
	e.fields.fields["name"] = name
	return e
}

// entityFromFields wraps an already-parsed raw mapping. Only allow-listed
// fields are retained.
func entityFromFields(m map[string]any) *Entity {
	e := &Entity{fields: newContainer("entity", entityFields, nil, entityDateFields)}
	for k, v := range m {
		if _, ok := e.fields.allowed[k]; ok {
			e.fields.fields[k] = v
		}
	}
	return e
}

// Get reads an allow-listed field. Unset fields read as "".
func (e *Entity) Get(field string) (any, error) { return e.fields.get(field) }

// Set writes an allow-listed field. Date fields parse string input and
// return an InvalidDateError when it is unparsable.
func (e *Entity) Set(field string, value any) error { return e.fields.set(field, value) }

// Fields flattens the Entity back to a raw field mapping.
func (e *Entity) Fields() map[string]any { return e.fields.rawFields() }

// IsEmpty always returns false: an Entity is never considered absent.
func (e *Entity) IsEmpty() bool { return false }

func (e *Entity) isActor() {}

// Name returns the entity's name, or "".
func (e *Entity) Name() string { return e.fields.str("name") }

// City returns the entity's city, or "".
func (e *Entity) City() string { return e.fields.str("city") }

// Region returns the entity's region, or "".
func (e *Entity) Region() string { return e.fields.str("region") }

// Country returns the entity's country, or "".
func (e *Entity) Country() string { return e.fields.str("country") }

// Location returns the entity's location, or "".
func (e *Entity) Location() string { return e.fields.str("location") }

// Alias returns the entity's alias, or "".
func (e *Entity) Alias() string { return e.fields.str("alias") }

// DateStart returns the entity's start date, or the zero time if unset or
// unparsable.
func (e *Entity) DateStart() time.Time { return e.fields.date("date-start") }

// DateEnd returns the entity's end date, or the zero time if unset or
// unparsable.
func (e *Entity) DateEnd() time.Time { return e.fields.date("date-end") }
