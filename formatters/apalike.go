package formatters

import (
	"strconv"
	"strings"
	"time"

	"github.com/citekit/cff"
)

// APALike renders a model as a plain-text citation in the style of APA.
type APALike struct{}

// Label returns the formatter's registration key.
func (APALike) Label() string { return "APAlike" }

// Format renders the model as a single citation sentence. It reports
// false when the model is not citable.
func (APALike) Format(model any, opts cff.CitationOptions) (string, bool) {
	model = selectModel(model, opts)
	if model == nil {
		return "", false
	}

	segments := []string{
		combineAuthors(modelAuthors(model)),
		"(" + apaDate(model) + ")",
		apaTitle(model),
		apaPublicationData(model),
		apaURL(model),
	}

	var kept []string
	for _, s := range segments {
		if s != "" && s != "()" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ". "), true
}

// combineAuthors joins rendered authors with commas and an ampersand
// before the last. The trailing period of the final author is stripped so
// the segment join does not double it.
func combineAuthors(actors []cff.Actor) string {
	rendered := make([]string, 0, len(actors))
	for _, a := range actors {
		rendered = append(rendered, apaActor(a))
	}
	switch len(rendered) {
	case 0:
		return ""
	case 1:
		return strings.TrimSuffix(rendered[0], ".")
	default:
		last := strings.TrimSuffix(rendered[len(rendered)-1], ".")
		return strings.Join(rendered[:len(rendered)-1], ", ") + ", & " + last
	}
}

// apaActor renders one actor: entities by name, people as
// "particle family-names, initials., suffix" with fallbacks to the given
// names and then the alias when no family name is present.
func apaActor(actor cff.Actor) string {
	switch a := actor.(type) {
	case *cff.Entity:
		return a.Name()
	case *cff.Person:
		name := apaPersonName(a)
		if name == "" {
			return ""
		}
		if a.NameParticle() != "" {
			name = a.NameParticle() + " " + name
		}
		if a.NameSuffix() != "" {
			name += ", " + a.NameSuffix()
		}
		return name
	default:
		return ""
	}
}

func apaPersonName(p *cff.Person) string {
	if p.FamilyNames() != "" {
		if p.GivenNames() != "" {
			return p.FamilyNames() + ", " + initials(p.GivenNames()) + "."
		}
		return p.FamilyNames()
	}
	if p.GivenNames() != "" {
		return p.GivenNames()
	}
	return p.Alias()
}

// apaDate renders the parenthesized date. Conference papers cite the
// conference dates when present; everything else cites the month and year
// resolved for the model.
func apaDate(model any) string {
	if r := asReference(model); r != nil && r.Type() == "conference-paper" && r.Conference() != nil {
		start := r.Conference().DateStart()
		if !start.IsZero() {
			finish := r.Conference().DateEnd()
			if finish.IsZero() || !start.Before(finish) {
				return strconv.Itoa(start.Year())
			}
			return dateRange(start, finish)
		}
	}

	_, year := monthAndYear(model)
	return year
}

// dateRange renders "2021, September 2–4", dropping the second year and
// month when they repeat the first.
func dateRange(start, finish time.Time) string {
	from := strconv.Itoa(start.Year()) + ", " + start.Month().String() + " " + strconv.Itoa(start.Day())

	var to string
	if finish.Year() != start.Year() {
		to = strconv.Itoa(finish.Year()) + ", " + finish.Month().String() + " " + strconv.Itoa(finish.Day())
	} else if finish.Month() != start.Month() {
		to = finish.Month().String() + " " + strconv.Itoa(finish.Day())
	} else {
		to = strconv.Itoa(finish.Day())
	}
	return from + "–" + to
}

func apaTitle(model any) string {
	title := modelTitle(model)
	if v := modelVersion(model); v != "" {
		title += " (Version " + v + ")"
	}
	return title + typeLabel(model)
}

// typeLabel renders the bracketed work-type label APA appends to titles.
func typeLabel(model any) string {
	t := modelType(model)
	switch {
	case strings.Contains(t, "data"):
		return " [Data set]"
	case strings.Contains(t, "conference"):
		return " [Conference paper]"
	case asReference(model) != nil && !strings.Contains(t, "software"):
		return ""
	default:
		return " [Computer software]"
	}
}

// apaPublicationData renders the venue segment, which varies by work type.
func apaPublicationData(model any) string {
	r := asReference(model)
	if r == nil {
		return ""
	}

	switch r.Type() {
	case "article", "magazine-article", "newspaper-article":
		parts := rejectEmpty([]string{
			r.Journal(),
			volumeIssue(r),
			pages(model, "–"),
			note(model),
		})
		return strings.Join(parts, ", ")
	case "book":
		if r.Publisher() != nil {
			return r.Publisher().Name()
		}
		return ""
	case "conference-paper":
		parts := rejectEmpty([]string{
			r.CollectionTitle(),
			volumeIssue(r),
			pages(model, "–"),
		})
		return strings.Join(parts, ", ")
	case "report":
		if r.Institution() != nil {
			return r.Institution().Name()
		}
		if authors := r.Authors(); len(authors) > 0 {
			if p, ok := authors[0].(*cff.Person); ok {
				return p.Affiliation()
			}
		}
		return ""
	case "phdthesis":
		return typeAndSchool(r, "Doctoral dissertation")
	case "mastersthesis":
		return typeAndSchool(r, "Master's thesis")
	case "unpublished":
		return note(model)
	default:
		return ""
	}
}

// volumeIssue renders "volume(issue)". Without a volume there is nothing
// to render, issue or not.
func volumeIssue(r *cff.Reference) string {
	volume := r.Volume()
	if volume == "" {
		return ""
	}
	if issue := r.Issue(); issue != "" {
		return volume + "(" + issue + ")"
	}
	return volume
}

func typeAndSchool(r *cff.Reference, label string) string {
	if t := r.ThesisType(); t != "" {
		label = t
	}
	school := ""
	if r.Institution() != nil {
		school = r.Institution().Name()
	} else if authors := r.Authors(); len(authors) > 0 {
		if p, ok := authors[0].(*cff.Person); ok {
			school = p.Affiliation()
		}
	}
	if school == "" {
		return "[" + label + "]"
	}
	return "[" + label + ", " + school + "]"
}

// apaURL prefers a DOI link over the model's URL.
func apaURL(model any) string {
	if doi := modelDOI(model); doi != "" {
		return "https://doi.org/" + doi
	}
	return modelURL(model)
}

func rejectEmpty(parts []string) []string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return kept
}
