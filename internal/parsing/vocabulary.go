package parsing

import "regexp"

// Section names recognized by the segmenter
const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionSummary        = "summary"
	SectionCertifications = "certifications"
)

// sectionOrder fixes the order header synonyms are compiled in
var sectionOrder = []string{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionSummary,
	SectionCertifications,
}

// sectionHeaders maps each section to its header synonyms (matched case-insensitively)
var sectionHeaders = map[string][]string{
	SectionExperience: {
		"experience", "work experience", "employment", "work history",
		"professional experience", "career history", "employment history",
	},
	SectionEducation: {
		"education", "academic", "qualifications", "academic background",
		"educational background", "academic qualifications",
	},
	SectionSkills: {
		"skills", "technical skills", "core competencies", "competencies",
		"expertise", "technologies", "proficiencies", "abilities",
	},
	SectionSummary: {
		"summary", "profile", "objective", "professional summary",
		"career objective", "about me", "overview",
	},
	SectionCertifications: {
		"certifications", "certificates", "licenses", "credentials",
		"professional certifications",
	},
}

// techSkills is the curated vocabulary matched as token sequences
var techSkills = []string{
	// programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Go", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "SQL",
	"Objective-C", "Dart", "Lua", "Haskell", "Clojure", "Elixir", "F#",
	// web
	"HTML", "CSS", "SASS", "LESS", "React", "Angular", "Vue", "Svelte",
	"Node.js", "Express", "Next.js", "Nuxt.js", "Gatsby", "Django", "Flask",
	"FastAPI", "Spring", "Spring Boot", "Rails", "Laravel", "ASP.NET",
	"jQuery", "Bootstrap", "Tailwind CSS", "Material UI", "Redux", "MobX",
	// mobile
	"React Native", "Flutter", "iOS", "Android", "SwiftUI", "Xamarin",
	// databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "SQLite",
	"Oracle", "SQL Server", "DynamoDB", "Cassandra", "Neo4j", "MariaDB",
	"Firebase", "Supabase", "CouchDB", "InfluxDB", "TimescaleDB",
	// cloud and devops
	"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "K8s",
	"Jenkins", "GitLab CI", "GitHub Actions", "CircleCI", "Travis CI",
	"Terraform", "Ansible", "Puppet", "Chef", "Linux", "Unix", "Bash",
	"Nginx", "Apache", "Cloudflare", "Heroku", "Vercel", "Netlify",
	"AWS Lambda", "S3", "EC2", "RDS", "CloudFormation", "EKS", "ECS",
	// data and ML
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Keras",
	"NLP", "Machine Learning", "Deep Learning", "Computer Vision", "AI",
	"Data Science", "Big Data", "Spark", "Hadoop", "Tableau", "Power BI",
	"OpenCV", "NLTK", "spaCy", "Hugging Face", "LangChain", "OpenAI",
	"Data Analysis", "Data Engineering", "ETL", "Airflow", "Kafka", "Flink",
	// testing
	"Jest", "Mocha", "Pytest", "JUnit", "Selenium", "Cypress", "Playwright",
	"Unit Testing", "Integration Testing", "E2E Testing", "TDD", "BDD",
	// tools and practices
	"Git", "GitHub", "GitLab", "Bitbucket", "SVN",
	"REST API", "GraphQL", "gRPC", "WebSocket", "OAuth", "JWT",
	"Microservices", "Serverless", "Event-Driven", "Domain-Driven Design",
	"Agile", "Scrum", "Kanban", "JIRA", "Confluence", "Trello", "Asana",
	"CI/CD", "DevOps", "SRE", "Monitoring", "Logging", "Prometheus", "Grafana",
	"RabbitMQ", "SQS", "SNS", "Celery", "Redis Queue",
	"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator",
	"VS Code", "IntelliJ", "PyCharm", "Vim", "Emacs",
}

// commonLanguages are found by case-insensitive substring search of the whole text
var commonLanguages = []string{
	"English", "Spanish", "French", "German", "Chinese", "Mandarin",
	"Japanese", "Korean", "Portuguese", "Italian", "Russian", "Arabic",
	"Hindi", "Dutch", "Swedish", "Norwegian", "Danish", "Finnish",
	"Polish", "Turkish", "Vietnamese", "Thai", "Indonesian",
}

// jobTitleKeywords open a new experience entry when found anywhere in a line
var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "director", "analyst",
	"consultant", "specialist", "coordinator", "administrator",
	"architect", "designer", "lead", "senior", "junior", "intern",
	"associate", "executive", "officer", "president", "vp",
}

// advancedDegreeMarkers identify a master's or doctoral degree token
var advancedDegreeMarkers = []string{"master", "mba", "ph.d", "phd", "doctorate"}

// degreePatterns are tried in order; submatch 1 is the degree token.
// Spelled-out and dotted forms match in any case. Undotted abbreviations
// must be upper case so that words like "as", "me" or "be" are not read as
// degrees.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b((?i:bachelor'?s?|b\.?tech|b\.sc?\.?|b\.a\.|b\.e\.)|B\.?S[Cc]?\.?|B\.?A\.?|B\.?E\.?)(?:[^A-Za-z]|$)`),
	regexp.MustCompile(`\b((?i:master'?s?|m\.?tech|mba|m\.sc?\.?|m\.a\.|m\.e\.)|M\.?S[Cc]?\.?|M\.?A\.?|M\.?E\.?)(?:[^A-Za-z]|$)`),
	regexp.MustCompile(`\b((?i:ph\.?d\.?|doctorate|doctoral))(?:[^A-Za-z]|$)`),
	regexp.MustCompile(`\b((?i:associate'?s?|a\.s\.|a\.a\.)|A\.?S\.?|A\.?A\.?)(?:[^A-Za-z]|$)`),
	regexp.MustCompile(`\b((?i:diploma|certificate))(?:[^A-Za-z]|$)`),
}

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	linkedInPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	phonePatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
	}

	dateRangePattern = regexp.MustCompile(`(?i)(?:\d{1,2}/\d{4}|\w+\s+\d{4}|\d{4})\s*[-–—to]+\s*(?:\d{1,2}/\d{4}|\w+\s+\d{4}|\d{4}|present|current)`)
	dateSplitPattern = regexp.MustCompile(`(?i)(?:[-–—]+|\bto\b)`)

	fieldOfStudyPattern = regexp.MustCompile(`(?i)(?:in|of)\s+([A-Za-z\s]+?)(?:\s*[,|\n]|$)`)
	yearPattern         = regexp.MustCompile(`(?:19|20)\d{2}`)
	gpaPattern          = regexp.MustCompile(`(?i)\bgpa\b[:\s]*([0-4]\.\d{1,2})`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// bulletGlyphs mark highlight lines in experience and are stripped from certifications
const bulletGlyphs = "•-*●○"

// Delimiters used to split a skills section body, applied in order
var skillDelimiters = []string{",", ";", "•", "●", "○", "|", "\n"}

// Length limits, counted in characters
const (
	maxSkillFragment     = 50
	maxNameLine          = 50
	maxSummaryLength     = 1000
	maxCertificationLine = 200
)

// Output caps
const (
	maxExperience     = 10
	maxEducation      = 5
	maxCertifications = 20
	maxLocationPlaces = 2
	nameFallbackLines = 5
)
