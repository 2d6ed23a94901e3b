package ghproject

// The catalog is the fixed set of labels, starter issues and milestones
// devctl proposes for a fresh repository.

// Label is a GitHub issue label.
type Label struct {
	Name        string
	Color       string // hex without the leading #
	Description string
}

// Issue is a starter issue.
type Issue struct {
	Title string
	Body  string
}

// Milestone is a planning milestone.
type Milestone struct {
	Title       string
	Description string
}

var Labels = []Label{
	{Name: "bug", Color: "d73a4a", Description: "Something isn't working"},
	{Name: "feature", Color: "a2eeef", Description: "New feature request"},
	{Name: "enhancement", Color: "84b6eb", Description: "Improvement to existing functionality"},
	{Name: "documentation", Color: "0075ca", Description: "Improvements or additions to documentation"},
	{Name: "good first issue", Color: "7057ff", Description: "Good for newcomers"},
	{Name: "help wanted", Color: "008672", Description: "Extra attention is needed"},
	{Name: "question", Color: "d876e3", Description: "Further information is requested"},
	{Name: "wontfix", Color: "ffffff", Description: "This will not be worked on"},
}

var Issues = []Issue{
	{Title: "README setup", Body: "Create a comprehensive README with project description, installation instructions, and usage examples."},
	{Title: "Add LICENSE", Body: "Choose and add an appropriate open-source license to the repository."},
	{Title: "Set up CI/CD", Body: "Configure continuous integration and deployment pipelines (e.g. GitHub Actions)."},
	{Title: "Create contributing guidelines", Body: "Add a CONTRIBUTING.md with guidelines for how others can contribute to the project."},
}

var Milestones = []Milestone{
	{Title: "v0.1 - Initial Setup", Description: "Basic project scaffolding and repository configuration."},
	{Title: "v0.2 - Core Features", Description: "Implement the core functionality of the project."},
	{Title: "v1.0 - First Release", Description: "Stable first public release."},
}
