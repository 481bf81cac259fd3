package model

// UnknownLanguage is reported when the hosting service does not detect a
// primary language for a repository.
const UnknownLanguage = "Unknown"

// Repository is a repository as reported by the hosting service.
type Repository struct {
	// Name is the repository name, unique within one fetch
	Name string `json:"name"`

	// Description is the free text description, possibly empty
	Description string `json:"description"`

	// URL is the browsable repository URL
	URL string `json:"url"`

	// Language is the primary language
	Language string `json:"language"`

	// Stars is the stargazer count
	Stars int `json:"stars"`

	// Forks is the fork count
	Forks int `json:"forks"`

	// Topics are the repository topics in service order
	Topics []string `json:"topics"`

	// Fork reports whether the repository is a fork
	Fork bool `json:"fork"`

	// Private reports whether the repository is private
	Private bool `json:"private"`

	// UpdatedAt is the last update time in RFC 3339, or empty
	UpdatedAt string `json:"updated_at"`
}

// WithDefaults returns a copy of r with absent optional fields defaulted.
func (r Repository) WithDefaults() Repository {
	if r.Language == "" {
		r.Language = UnknownLanguage
	}

	if r.Stars < 0 {
		r.Stars = 0
	}

	if r.Forks < 0 {
		r.Forks = 0
	}

	if r.Topics == nil {
		r.Topics = []string{}
	}

	return r
}

// Profile holds the account fields used for the rendered page.
type Profile struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
}
