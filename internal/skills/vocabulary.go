package skills

// Vocabulary is the canonical, ordered list of skills the matcher knows
// about. The order is the priority order used when truncating matched
// skills into a search query, so entries are grouped roughly by how
// useful they are as query terms.
//
// Only skills reliably written with consistent capitalisation in resumes
// are listed. Ambiguous short names (C, R, Go, REST, OOP, Perl) are
// excluded: they match inside ordinary English words ("go" in "good",
// "R" in "React") and case-sensitive matching alone cannot save them.
var Vocabulary = []string{
	// Programming languages
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Golang",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "MATLAB", "Dart",
	// Frontend
	"React", "Vue", "Angular", "Next.js", "Nuxt.js", "Svelte",
	"HTML", "CSS", "Sass", "Tailwind", "Bootstrap", "jQuery",
	"Redux", "Webpack", "Vite",
	// Backend
	"Node.js", "Express", "FastAPI", "Django", "Flask", "Spring Boot",
	"Laravel", "Rails", "ASP.NET", "NestJS", "GraphQL", "gRPC",
	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra",
	"Elasticsearch", "SQLite", "Oracle", "DynamoDB", "Firestore", "Firebase",
	// Cloud and DevOps
	"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Jenkins", "CI/CD", "GitHub Actions", "Linux", "Nginx", "Apache",
	// Data, ML, AI
	"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
	"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy",
	"Matplotlib", "Data Analysis", "Data Science", "LLM", "OpenAI",
	"Hugging Face",
	// Mobile
	"React Native", "Flutter", "Android", "iOS", "Expo",
	// Tools and practices
	"Git", "GitHub", "Jira", "Agile", "Scrum", "Microservices",
	"System Design", "Algorithms", "Data Structures",
	// Testing
	"Jest", "Pytest", "Selenium", "Cypress", "Unit Testing",
}

// customPatterns overrides the default whole-word pattern for labels
// containing punctuation or internal whitespace. Multi-word labels
// tolerate any whitespace run between words; Scikit-learn and CI/CD
// tolerate their common separator variants. Labels ending in + or #
// cannot use a trailing \b (RE2 word boundaries only assert next to a
// word character), so they bound themselves with an explicit character
// class instead.
var customPatterns = map[string]string{
	"C++":              `\bC\+\+($|[^+\w])`,
	"C#":               `\bC#($|[^#\w])`,
	"Next.js":          `\bNext\.js\b`,
	"Nuxt.js":          `\bNuxt\.js\b`,
	"Node.js":          `\bNode\.js\b`,
	"Scikit-learn":     `\bScikit[\-\s]learn\b`,
	"CI/CD":            `\bCI[/\-]CD\b`,
	"ASP.NET":          `\bASP\.NET\b`,
	"GitHub Actions":   `\bGitHub\s+Actions\b`,
	"React Native":     `\bReact\s+Native\b`,
	"Machine Learning": `\bMachine\s+Learning\b`,
	"Deep Learning":    `\bDeep\s+Learning\b`,
	"Computer Vision":  `\bComputer\s+Vision\b`,
	"Data Analysis":    `\bData\s+Analysis\b`,
	"Data Science":     `\bData\s+Science\b`,
	"Data Structures":  `\bData\s+Structures\b`,
	"System Design":    `\bSystem\s+Design\b`,
	"Unit Testing":     `\bUnit\s+Testing\b`,
	"Hugging Face":     `\bHugging\s+Face\b`,
	"Spring Boot":      `\bSpring\s+Boot\b`,
}
