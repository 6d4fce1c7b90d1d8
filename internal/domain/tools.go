package domain

import "strings"

// tools is the catalogue of technologies a job may list.
var tools = map[string]struct{}{
	"ANGULAR": {}, "ANSIBLE": {}, "AWS": {}, "AZURE": {}, "BASH": {}, "C": {},
	"CPP": {}, "CSHARP": {}, "DJANGO": {}, "DOCKER": {}, "ELASTICSEARCH": {},
	"FASTAPI": {}, "FIGMA": {}, "FLASK": {}, "FLUTTER": {}, "GCP": {}, "GIT": {},
	"GO": {}, "GRAPHQL": {}, "HASKELL": {}, "JAVA": {}, "JAVASCRIPT": {},
	"JENKINS": {}, "KAFKA": {}, "KOTLIN": {}, "KUBERNETES": {}, "LATEX": {},
	"LINUX": {}, "MATLAB": {}, "MONGODB": {}, "MYSQL": {}, "NEXTJS": {},
	"NODEJS": {}, "PANDAS": {}, "PHP": {}, "POSTGRESQL": {}, "PYTHON": {},
	"PYTORCH": {}, "R": {}, "RABBITMQ": {}, "REACT": {}, "REDIS": {}, "RUBY": {},
	"RUST": {}, "SCALA": {}, "SPRING": {}, "SQL": {}, "SUPABASE": {}, "SWIFT": {},
	"TAILWIND": {}, "TENSORFLOW": {}, "TERRAFORM": {}, "TYPESCRIPT": {}, "VUE": {},
}

// KnownTool reports whether name is in the tools catalogue. Matching is
// case-insensitive.
func KnownTool(name string) bool {
	_, ok := tools[strings.ToUpper(strings.TrimSpace(name))]
	return ok
}

// NormalizeTool returns the catalogue spelling of name.
func NormalizeTool(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
