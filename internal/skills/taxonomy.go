package skills

// Category is the fixed, closed set of skill categories.
type Category string

const (
	CategoryLanguages  Category = "languages"
	CategoryFrameworks Category = "frameworks"
	CategoryTools      Category = "tools"
	CategoryDatabases  Category = "databases"
	CategoryConcepts   Category = "concepts"
	CategorySoft       Category = "soft-skills"
)

// CategoryOrder fixes the grouping order for matcher output.
var CategoryOrder = []Category{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryTools,
	CategoryDatabases,
	CategoryConcepts,
	CategorySoft,
}

// Definition is one taxonomy entry. The canonical name always wins over
// whatever surface form matched in the text.
type Definition struct {
	Name     string
	Category Category
	Synonyms []string
	Keywords []string
}

// DefaultTaxonomy returns the built-in skill dictionary. The table is
// read-only after construction and safe to share across requests.
func DefaultTaxonomy() []Definition {
	return []Definition{
		// Languages
		{Name: "JavaScript", Category: CategoryLanguages, Synonyms: []string{"js", "ecmascript"}, Keywords: []string{"es6", "es2015"}},
		{Name: "TypeScript", Category: CategoryLanguages, Synonyms: []string{"ts"}},
		{Name: "Python", Category: CategoryLanguages, Synonyms: []string{"py"}, Keywords: []string{"pythonic"}},
		{Name: "Java", Category: CategoryLanguages, Keywords: []string{"jvm"}},
		{Name: "Go", Category: CategoryLanguages, Synonyms: []string{"golang"}},
		{Name: "C++", Category: CategoryLanguages, Synonyms: []string{"cpp"}},
		{Name: "C#", Category: CategoryLanguages, Synonyms: []string{"csharp"}, Keywords: []string{".net"}},
		{Name: "C", Category: CategoryLanguages},
		{Name: "Ruby", Category: CategoryLanguages},
		{Name: "PHP", Category: CategoryLanguages},
		{Name: "Rust", Category: CategoryLanguages},
		{Name: "Kotlin", Category: CategoryLanguages},
		{Name: "Swift", Category: CategoryLanguages},
		{Name: "SQL", Category: CategoryLanguages},
		{Name: "HTML", Category: CategoryLanguages, Synonyms: []string{"html5"}},
		{Name: "CSS", Category: CategoryLanguages, Synonyms: []string{"css3"}},

		// Frameworks and libraries
		{Name: "React", Category: CategoryFrameworks, Synonyms: []string{"reactjs", "react.js"}, Keywords: []string{"jsx", "hooks"}},
		{Name: "Angular", Category: CategoryFrameworks, Synonyms: []string{"angularjs"}},
		{Name: "Vue", Category: CategoryFrameworks, Synonyms: []string{"vuejs", "vue.js"}},
		{Name: "Next.js", Category: CategoryFrameworks, Synonyms: []string{"nextjs"}},
		{Name: "Node.js", Category: CategoryFrameworks, Synonyms: []string{"nodejs", "node"}},
		{Name: "Express", Category: CategoryFrameworks, Synonyms: []string{"expressjs", "express.js"}},
		{Name: "Django", Category: CategoryFrameworks},
		{Name: "Flask", Category: CategoryFrameworks},
		{Name: "FastAPI", Category: CategoryFrameworks},
		{Name: "Spring Boot", Category: CategoryFrameworks, Synonyms: []string{"spring"}},
		{Name: "Ruby on Rails", Category: CategoryFrameworks, Synonyms: []string{"rails"}},
		{Name: "Tailwind CSS", Category: CategoryFrameworks, Synonyms: []string{"tailwind", "tailwindcss"}},
		{Name: "GraphQL", Category: CategoryFrameworks},
		{Name: "TensorFlow", Category: CategoryFrameworks},
		{Name: "PyTorch", Category: CategoryFrameworks},

		// Tools and platforms
		{Name: "Git", Category: CategoryTools, Synonyms: []string{"github", "gitlab", "bitbucket"}},
		{Name: "Docker", Category: CategoryTools, Keywords: []string{"container", "containerized"}},
		{Name: "Kubernetes", Category: CategoryTools, Synonyms: []string{"k8s"}},
		{Name: "AWS", Category: CategoryTools, Synonyms: []string{"amazon web services"}, Keywords: []string{"ec2", "s3", "lambda"}},
		{Name: "Azure", Category: CategoryTools},
		{Name: "Google Cloud", Category: CategoryTools, Synonyms: []string{"gcp"}},
		{Name: "Jenkins", Category: CategoryTools},
		{Name: "Terraform", Category: CategoryTools},
		{Name: "Linux", Category: CategoryTools, Synonyms: []string{"unix"}, Keywords: []string{"bash", "shell scripting"}},
		{Name: "Kafka", Category: CategoryTools, Synonyms: []string{"apache kafka"}},
		{Name: "RabbitMQ", Category: CategoryTools},
		{Name: "Nginx", Category: CategoryTools},
		{Name: "Jira", Category: CategoryTools},
		{Name: "Figma", Category: CategoryTools},
		{Name: "Postman", Category: CategoryTools},

		// Databases
		{Name: "PostgreSQL", Category: CategoryDatabases, Synonyms: []string{"postgres"}},
		{Name: "MySQL", Category: CategoryDatabases},
		{Name: "MongoDB", Category: CategoryDatabases, Synonyms: []string{"mongo"}},
		{Name: "Redis", Category: CategoryDatabases},
		{Name: "SQLite", Category: CategoryDatabases},
		{Name: "Elasticsearch", Category: CategoryDatabases, Synonyms: []string{"elastic search"}},
		{Name: "Cassandra", Category: CategoryDatabases},
		{Name: "DynamoDB", Category: CategoryDatabases},
		{Name: "Firebase", Category: CategoryDatabases, Synonyms: []string{"firestore"}},

		// Core CS concepts
		{Name: "Data Structures", Category: CategoryConcepts, Synonyms: []string{"data structures and algorithms", "dsa"}},
		{Name: "Algorithms", Category: CategoryConcepts, Keywords: []string{"algorithmic"}},
		{Name: "Object-Oriented Programming", Category: CategoryConcepts, Synonyms: []string{"oop", "object oriented programming"}},
		{Name: "System Design", Category: CategoryConcepts, Synonyms: []string{"distributed systems"}},
		{Name: "REST APIs", Category: CategoryConcepts, Synonyms: []string{"rest api", "restful apis", "restful"}, Keywords: []string{"rest"}},
		{Name: "Microservices", Category: CategoryConcepts, Synonyms: []string{"microservice architecture"}},
		{Name: "CI/CD", Category: CategoryConcepts, Synonyms: []string{"continuous integration", "continuous deployment"}},
		{Name: "Machine Learning", Category: CategoryConcepts, Synonyms: []string{"ml"}, Keywords: []string{"deep learning"}},
		{Name: "Testing", Category: CategoryConcepts, Synonyms: []string{"unit testing", "test driven development", "tdd"}},
		{Name: "Agile", Category: CategoryConcepts, Synonyms: []string{"scrum"}, Keywords: []string{"sprint planning"}},

		// Soft skills
		{Name: "Leadership", Category: CategorySoft, Synonyms: []string{"team leadership"}, Keywords: []string{"led a team", "mentored"}},
		{Name: "Communication", Category: CategorySoft, Keywords: []string{"presented", "stakeholder"}},
		{Name: "Problem Solving", Category: CategorySoft, Synonyms: []string{"problem-solving"}},
		{Name: "Collaboration", Category: CategorySoft, Synonyms: []string{"teamwork"}, Keywords: []string{"cross-functional"}},
		{Name: "Time Management", Category: CategorySoft},
	}
}
