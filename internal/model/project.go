package model

// Classification labels a project as substantive work or learning material.
type Classification string

const (
	ClassificationTraining Classification = "training"
	ClassificationProject  Classification = "project"
)

// Valid reports whether c is one of the known labels.
func (c Classification) Valid() bool {
	return c == ClassificationTraining || c == ClassificationProject
}

func (c Classification) String() string {
	return string(c)
}

// Project is one entry of the persisted projects document.
//
// Classification and Image are sticky: once written they are kept on later
// runs. Extra holds any key a user added by hand and is written back as is.
type Project struct {
	Name           string         `yaml:"name" json:"name"`
	Description    string         `yaml:"description" json:"description"`
	URL            string         `yaml:"url" json:"url"`
	Classification Classification `yaml:"classification" json:"classification"`
	Image          string         `yaml:"image" json:"image"`
	Language       string         `yaml:"language" json:"language"`
	Stars          int            `yaml:"stars" json:"stars"`
	Forks          int            `yaml:"forks" json:"forks"`
	Topics         []string       `yaml:"topics" json:"topics"`
	UpdatedAt      string         `yaml:"updated_at" json:"updated_at"`
	Logo           string         `yaml:"logo,omitempty" json:"logo,omitempty"`
	Extra          map[string]any `yaml:",inline" json:"extra,omitempty"`
}

// Clone returns a copy of p that shares no slices or maps with it.
func (p Project) Clone() Project {
	out := p

	if p.Topics != nil {
		out.Topics = append([]string(nil), p.Topics...)
	}

	if p.Extra != nil {
		out.Extra = make(map[string]any, len(p.Extra))
		for k, v := range p.Extra {
			out.Extra[k] = v
		}
	}

	return out
}

// Document is the persisted projects configuration.
type Document struct {
	Projects []Project `yaml:"projects" json:"projects"`
}
