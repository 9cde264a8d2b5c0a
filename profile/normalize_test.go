package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalText(t *testing.T) {
	testCases := []struct {
		name     string
		profile  Profile
		expected string
	}{
		{
			name: "AllSections",
			profile: Profile{
				ID:             "p1",
				Name:           "Ada Lovelace",
				Position:       "Engineer",
				About:          "Pioneer of computing.",
				CurrentCompany: &Company{Name: "Analytical Engines"},
				Experience: []Experience{
					{Title: "Analyst", Company: "Babbage & Co"},
					{Title: "Translator", Company: "Royal Society"},
				},
			},
			expected: "Ada Lovelace — Engineer\n\n" +
				"Pioneer of computing.\n\n" +
				"Current: Analytical Engines\n\n" +
				"Experience: Analyst at Babbage & Co; Translator at Royal Society",
		},
		{
			name: "HeaderOnly",
			profile: Profile{
				ID:       "p1",
				Name:     "Ada Lovelace",
				Position: "Engineer",
			},
			expected: "Ada Lovelace — Engineer",
		},
		{
			name:     "EmptyNameAndPositionStillEmitHeader",
			profile:  Profile{ID: "p2"},
			expected: " — ",
		},
		{
			name: "ExperienceEntriesWithoutBothFieldsAreDropped",
			profile: Profile{
				ID:       "p3",
				Name:     "Grace Hopper",
				Position: "Rear Admiral",
				Experience: []Experience{
					{Title: "Programmer"},
					{Company: "Navy"},
					{Title: "Professor", Company: "Vassar"},
				},
			},
			expected: "Grace Hopper — Rear Admiral\n\nExperience: Professor at Vassar",
		},
		{
			name: "NoQualifyingExperienceOmitsSection",
			profile: Profile{
				ID:         "p4",
				Name:       "Alan Turing",
				Position:   "Mathematician",
				Experience: []Experience{{Title: "Fellow"}},
			},
			expected: "Alan Turing — Mathematician",
		},
		{
			name: "EmptyCurrentCompanyNameOmitsSection",
			profile: Profile{
				ID:             "p5",
				Name:           "Alan Turing",
				Position:       "Mathematician",
				CurrentCompany: &Company{},
			},
			expected: "Alan Turing — Mathematician",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.profile.CanonicalText())
		})
	}
}

func TestCanonicalTextDeterminism(t *testing.T) {
	p := Profile{
		ID:             "p1",
		Name:           "Ada Lovelace",
		Position:       "Engineer",
		About:          "Pioneer of computing.",
		CurrentCompany: &Company{Name: "Analytical Engines"},
		Experience:     []Experience{{Title: "Analyst", Company: "Babbage & Co"}},
	}

	first := p.CanonicalText()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.CanonicalText())
	}
}

func TestParseHeader(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		wantName  string
		wantTitle string
	}{
		{"HeaderLine", "Ada Lovelace — Engineer", "Ada Lovelace", "Engineer"},
		{"HeaderWithBody", "Ada Lovelace — Engineer\n\nPioneer of computing.", "Ada Lovelace", "Engineer"},
		{"NoSeparator", "just some biography text", "Unknown", "Unknown"},
		{"SeparatorOnlyInBody", "first line\n\nlater — text", "Unknown", "Unknown"},
		{"SplitsOnFirstSeparator", "A — B — C", "A", "B — C"},
		{"Empty", "", "Unknown", "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, title := ParseHeader(tc.text)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantTitle, title)
		})
	}
}

func TestExperienceCompanies(t *testing.T) {
	p := Profile{
		Experience: []Experience{
			{Title: "Analyst", Company: "Babbage & Co"},
			{Title: "Programmer"},
			{Company: "Navy"},
		},
	}
	assert.Equal(t, []string{"Babbage & Co", "Navy"}, p.ExperienceCompanies())

	empty := Profile{}
	assert.Nil(t, empty.ExperienceCompanies())
	assert.Equal(t, "", empty.CurrentCompanyName())
}
