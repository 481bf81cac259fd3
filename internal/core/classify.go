package core

import (
	"strings"

	"github.com/inovacc/showcase/internal/model"
)

// trainingKeywords mark a repository as learning material. Matching is by
// substring, so "tutorialish" also matches.
var trainingKeywords = []string{
	"tutorial", "course", "learning", "practice", "exercise",
	"training", "workshop", "lesson", "bootcamp", "skill",
	"learn", "study", "example", "sample", "demo",
}

func containsKeyword(s string) bool {
	s = strings.ToLower(s)
	for _, kw := range trainingKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}

	return false
}

// Classify labels a repository. Rules are evaluated in order and the first
// match wins:
//
//  1. name contains a training keyword
//  2. description contains a training keyword
//  3. any topic contains a training keyword
//  4. fork with no stars and no description
//
// Everything else is a project.
func Classify(repo model.Repository) model.Classification {
	if containsKeyword(repo.Name) {
		return model.ClassificationTraining
	}

	if containsKeyword(repo.Description) {
		return model.ClassificationTraining
	}

	for _, topic := range repo.Topics {
		if containsKeyword(topic) {
			return model.ClassificationTraining
		}
	}

	// Low-engagement fork
	if repo.Fork && repo.Stars == 0 && repo.Description == "" {
		return model.ClassificationTraining
	}

	return model.ClassificationProject
}
