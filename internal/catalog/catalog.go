// Package catalog holds the named, immutable question catalogs. Catalog
// content changes require redeploying configuration, not runtime updates.
package catalog

import (
	"fmt"

	"github.com/radion-x/ODI-Aaron-3/internal/model"
)

// BackPainID is the catalog identifier of the Modified Oswestry Disability
// Index back-pain variant, the one catalog active in the current product.
const BackPainID = "oswestryBack"

// NotFoundError is returned when a catalog identifier is unknown
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog %q not found", e.ID)
}

// Catalog is an ordered list of question definitions under one identifier
type Catalog struct {
	ID        string                     `json:"id"`
	Questions []model.QuestionDefinition `json:"questions"`
}

// Registry resolves catalog identifiers. It is immutable after construction
// and safe for unrestricted concurrent reads.
type Registry struct {
	catalogs map[string]*Catalog
}

// NewRegistry builds a registry from the given catalogs
func NewRegistry(catalogs ...*Catalog) *Registry {
	m := make(map[string]*Catalog, len(catalogs))
	for _, c := range catalogs {
		m[c.ID] = c
	}
	return &Registry{catalogs: m}
}

// Default returns a registry holding the built-in catalogs
func Default() *Registry {
	return NewRegistry(BackPain())
}

// Get returns the catalog for the given identifier
func (r *Registry) Get(id string) (*Catalog, error) {
	c, ok := r.catalogs[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return c, nil
}

// Question returns the definition for the given question id within the catalog
func (c *Catalog) Question(id string) (model.QuestionDefinition, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return model.QuestionDefinition{}, false
}

// BackPain returns the Modified Oswestry Disability Index back-pain catalog:
// ten choice questions with six options each, ordered least to most severe.
func BackPain() *Catalog {
	return &Catalog{
		ID: BackPainID,
		Questions: []model.QuestionDefinition{
			{
				ID:     "painIntensity",
				Prompt: "Pain Intensity",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"I have no pain at the moment.",
					"The pain is very mild at the moment.",
					"The pain is moderate at the moment.",
					"The pain is fairly severe at the moment.",
					"The pain is very severe at the moment.",
					"The pain is the worst imaginable at the moment.",
				},
			},
			{
				ID:     "personalCare",
				Prompt: "Personal Care (Washing, Dressing, etc.)",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"I can look after myself normally without causing extra pain.",
					"I can look after myself normally but it causes extra pain.",
					"It is painful to look after myself and I am slow and careful.",
					"I need some help but manage most of my personal care.",
					"I need help every day in most aspects of self-care.",
					"I do not get dressed, wash with difficulty, and stay in bed.",
				},
			},
			{
				ID:     "lifting",
				Prompt: "Lifting",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"I can lift heavy weights without extra pain.",
					"I can lift heavy weights but it gives extra pain.",
					"Pain prevents me from lifting heavy weights off the floor, but I can manage if they are conveniently positioned (e.g., on a table).",
					"Pain prevents me from lifting heavy weights, but I can manage light to medium weights if they are conveniently positioned.",
					"I can lift very light weights.",
					"I cannot lift or carry anything at all.",
				},
			},
			{
				ID:     "walking",
				Prompt: "Walking",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"Pain does not prevent me from walking any distance.",
					"Pain prevents me from walking more than 1 mile.",
					"Pain prevents me from walking more than 1/2 mile.",
					"Pain prevents me from walking more than 1/4 mile.",
					"I can only walk using a stick or crutches.",
					"I am in bed most of the time and have to crawl to the toilet.",
				},
			},
			{
				ID:     "sitting",
				Prompt: "Sitting",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"I can sit in any chair as long as I like.",
					"I can only sit in my favorite chair as long as I like.",
					"Pain prevents me from sitting for more than 1 hour.",
					"Pain prevents me from sitting for more than 1/2 hour.",
					"Pain prevents me from sitting for more than 10 minutes.",
					"Pain prevents me from sitting at all.",
				},
			},
			{
				ID:     "standing",
				Prompt: "Standing",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"I can stand as long as I want without extra pain.",
					"I can stand as long as I want but it gives me extra pain.",
					"Pain prevents me from standing for more than 1 hour.",
					"Pain prevents me from standing for more than 1/2 hour.",
					"Pain prevents me from standing for more than 10 minutes.",
					"Pain prevents me from standing at all.",
				},
			},
			{
				ID:     "sleeping",
				Prompt: "Sleeping",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"My sleep is never disturbed by pain.",
					"My sleep is occasionally disturbed by pain.",
					"Because of pain, I have less than 6 hours of sleep.",
					"Because of pain, I have less than 4 hours of sleep.",
					"Because of pain, I have less than 2 hours of sleep.",
					"Pain prevents me from sleeping at all.",
				},
			},
			{
				ID:     "sexLife",
				Prompt: "Sex Life (if applicable)",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"My sex life is normal and causes no extra pain.",
					"My sex life is normal but causes some extra pain.",
					"My sex life is nearly normal but is very painful.",
					"My sex life is severely restricted by pain.",
					"My sex life is nearly absent because of pain.",
					"Pain prevents any sex life at all.",
				},
			},
			{
				ID:     "socialLife",
				Prompt: "Social Life",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"My social life is normal and gives me no extra pain.",
					"My social life is normal but increases the degree of pain.",
					"Pain has no significant effect on my social life apart from limiting energetic activities (e.g., dancing).",
					"Pain has restricted my social life and I do not go out as often.",
					"Pain has restricted my social life to my home.",
					"I have no social life because of pain.",
				},
			},
			{
				ID:     "traveling",
				Prompt: "Traveling",
				Kind:   model.AnswerKindChoice,
				Options: []string{
					"I can travel anywhere without pain.",
					"I can travel anywhere but it gives extra pain.",
					"Pain is bad but I manage journeys over 2 hours.",
					"Pain restricts me to journeys of less than 1 hour.",
					"Pain restricts me to short necessary journeys under 30 minutes.",
					"Pain prevents me from traveling except to receive treatment.",
				},
			},
		},
	}
}
