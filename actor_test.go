package cff

import "testing"

func TestActorFromFields(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]any
		wantEntity bool
	}{
		{
			name:       "name field means entity",
			fields:     map[string]any{"name": "The Project Team"},
			wantEntity: true,
		},
		{
			name:       "person fields mean person",
			fields:     map[string]any{"given-names": "Robert", "family-names": "Haines"},
			wantEntity: false,
		},
		{
			name:       "name wins over person fields",
			fields:     map[string]any{"name": "The Project Team", "given-names": "Robert"},
			wantEntity: true,
		},
		{
			name:       "empty mapping is a person",
			fields:     map[string]any{},
			wantEntity: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := actorFromFields(tt.fields)
			_, isEntity := actor.(*Entity)
			if isEntity != tt.wantEntity {
				t.Errorf("got entity=%v, want entity=%v", isEntity, tt.wantEntity)
			}
		})
	}
}

func TestBuildActorCollection(t *testing.T) {
	actors := buildActorCollection([]any{
		map[string]any{"given-names": "Robert", "family-names": "Haines"},
		"just a string",
		map[string]any{"name": "The Project Team"},
		42,
	})

	if len(actors) != 2 {
		t.Fatalf("got %d actors, want 2", len(actors))
	}
	if _, ok := actors[0].(*Person); !ok {
		t.Errorf("actors[0] is %T, want *Person", actors[0])
	}
	if _, ok := actors[1].(*Entity); !ok {
		t.Errorf("actors[1] is %T, want *Entity", actors[1])
	}
}

func TestBuildActorCollectionNonList(t *testing.T) {
	actors := buildActorCollection("not a list")
	if actors == nil || len(actors) != 0 {
		t.Errorf("got %v, want empty non-nil slice", actors)
	}
}
