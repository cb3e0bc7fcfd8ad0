package nlp

// Fixed vocabularies used by the extractors. The slices are ordered as
// listed, grouped by category; keyword matching iterates them in this order,
// so extraction output order is stable across runs. Treat them as immutable
// constant tables.

// commonTechSkills is the technical skill vocabulary.
var commonTechSkills = []string{
	// Programming languages
	"python", "java", "javascript", "c++", "c#", "ruby", "go", "rust", "swift",
	"kotlin", "php", "scala", "typescript", "r", "sql", "html", "css",
	// Frameworks & libraries
	"django", "flask", "fastapi", "spring", "react", "angular", "vue", "nodejs",
	"express", "rails", "numpy", "pandas", "tensorflow", "pytorch", "keras",
	"scikit-learn", "laravel", "asp.net", "jquery", "bootstrap",
	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "ci/cd",
	"terraform", "ansible", "linux", "bash", "shell", "nginx", "apache",
	// Databases
	"postgresql", "mysql", "mongodb", "redis", "sqlite", "oracle", "elasticsearch",
	"cassandra", "dynamodb", "neo4j", "firebase",
	// Data science & ML
	"machine learning", "deep learning", "nlp", "data science", "data analysis",
	"statistics", "matplotlib", "seaborn", "tableau", "power bi", "spark", "hadoop",
	"jupyter", "rmarkdown", "sas", "spss",
	// Other technical skills
	"api", "rest", "graphql", "microservices", "agile", "scrum", "kanban",
	"tdd", "bdd", "unit testing", "integration testing", "gitflow", "design patterns",
}

// softSkills is the soft skill vocabulary.
var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"adaptability", "time management", "collaboration", "analytical", "creativity",
	"project management", "public speaking", "negotiation", "decision making",
	"strategic thinking", "mentoring", "coaching", "interpersonal", "organizational",
}

// skillPatterns detect version-qualified skill and certification mentions
// that the plain vocabulary match would miss.
var skillPatterns = []string{
	// Programming with versions (e.g., Python 3.8, Java 11)
	`python\s*\d+(?:\.\d+)*`,
	`java\s*\d+(?:\.\d+)*`,
	`node(?:js)?\s*\d+(?:\.\d+)*`,
	// Framework versions (e.g., React 18, Django 4)
	`react\s*\d+(?:\.\d+)*`,
	`angular\s*\d+(?:\.\d+)*`,
	`django\s*\d+(?:\.\d+)*`,
	// Certifications
	`aws\s*certified`,
	`azure\s*certified`,
	`gcp\s*certified`,
	`pmp`,
	`prince2`,
	`scrum\s*master`,
	`agile\s*certified`,
}
