package core

import (
	"sort"

	"github.com/inovacc/showcase/internal/model"
)

// Merge combines freshly fetched repositories with the previously persisted
// projects.
//
// Classification and Image are kept from the prior record when non-empty and
// computed otherwise. Every other prior field, including hand-added extras,
// survives; only the fetched metadata fields are overwritten. Projects that
// were not fetched are dropped. The result is sorted by UpdatedAt descending
// with empty timestamps last and fetch order kept for ties.
func Merge(fetched []model.Repository, prior []model.Project) []model.Project {
	byName := make(map[string]model.Project, len(prior))
	for _, p := range prior {
		byName[p.Name] = p
	}

	// Duplicate names in one fetch: last values win, first position is kept.
	position := make(map[string]int, len(fetched))
	merged := make([]model.Project, 0, len(fetched))

	for _, repo := range fetched {
		proj := mergeOne(repo.WithDefaults(), byName)

		if i, ok := position[repo.Name]; ok {
			merged[i] = proj
			continue
		}

		position[repo.Name] = len(merged)
		merged = append(merged, proj)
	}

	SortByUpdated(merged)

	return merged
}

func mergeOne(repo model.Repository, prior map[string]model.Project) model.Project {
	var proj model.Project

	existing, ok := prior[repo.Name]
	if ok {
		proj = existing.Clone()
	}

	if proj.Classification == "" {
		proj.Classification = Classify(repo)
	}

	if proj.Image == "" {
		proj.Image = AnimalFor(repo.Name)
	}

	proj.Name = repo.Name
	proj.Description = repo.Description
	proj.URL = repo.URL
	proj.Language = repo.Language
	proj.Stars = repo.Stars
	proj.Forks = repo.Forks
	proj.Topics = append([]string{}, repo.Topics...)
	proj.UpdatedAt = repo.UpdatedAt

	return proj
}

// SortByUpdated sorts projects by UpdatedAt descending in place. The sort is
// stable and an empty UpdatedAt sorts last.
func SortByUpdated(projects []model.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt > projects[j].UpdatedAt
	})
}

// CountByClassification returns the number of projects per label.
func CountByClassification(projects []model.Project) map[model.Classification]int {
	counts := make(map[model.Classification]int)
	for _, p := range projects {
		counts[p.Classification]++
	}

	return counts
}
