package cff

// Actor is a person or entity attributable to a role in a citation: an
// author, contact, editor, recipient, sender or translator. The two
// concrete kinds are *Person and *Entity; code consuming actors switches on
// the concrete type.
type Actor interface {
	fielder

	// IsEmpty reports whether the actor should be treated as absent. It is
	// always false for Person and Entity: even an all-default actor is a
	// real actor, which lets templates check emptiness uniformly across
	// strings, slices and actors.
	IsEmpty() bool

	// Get reads an allow-listed field; unknown fields return an
	// UnknownFieldError.
	Get(field string) (any, error)

	// Set writes an allow-listed field; unknown fields return an
	// UnknownFieldError.
	Set(field string, value any) error

	isActor()
}

// actorFromFields classifies a raw actor-shaped mapping. A record carrying
// a `name` field is an Entity, anything else is a Person. The precedence is
// deliberate: a record with both `name` and `given-names` is treated as an
// Entity, matching how the CITATION file format is used in the wild even
// though the format declares no discriminator.
func actorFromFields(m map[string]any) Actor {
	if _, ok := m["name"]; ok {
		return entityFromFields(m)
	}
	return personFromFields(m)
}

// buildActorCollection promotes a raw list into typed actors. Entries that
// are not field mappings (for example plain strings) are dropped:
// normalization, not an error.
func buildActorCollection(raw any) []Actor {
	list, ok := raw.([]any)
	if !ok {
		return []Actor{}
	}
	actors := make([]Actor, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			actors = append(actors, actorFromFields(m))
		}
	}
	return actors
}

// flattenActors re-serializes an actor collection, skipping nil entries.
func flattenActors(actors []Actor) []map[string]any {
	out := make([]map[string]any, 0, len(actors))
	for _, a := range actors {
		if a == nil {
			continue
		}
		out = append(out, a.Fields())
	}
	return out
}
