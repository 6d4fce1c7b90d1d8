package apperr

import (
	"fmt"
	"regexp"
	"strings"
)

type entry struct {
	kind     Kind
	code     Code
	label    string
	template string
	// empty renders instead of template when Value is "".
	empty string
}

func (e entry) render(err *Error) string {
	if err.Value == "" && e.empty != "" {
		return e.empty
	}
	key := err.Key
	if key == "" {
		key = "ID"
	}
	return strings.NewReplacer("{key}", key, "{value}", err.Value).Replace(e.template)
}

var registry = [variantCount]entry{
	VariantUserNotFound:                {KindNotFound, UserUserNFA01, "User not found", "User with ID {value} does not exist.", ""},
	VariantProfileNotFound:             {KindNotFound, UserProfileNFA01, "Profile not found", "Profile with {key} {value} does not exist.", ""},
	VariantProfileAlreadyExists:        {KindAlreadyExists, UserProfileAEA01, "Profile already exists", "Profile already exists for user ID {value}.", ""},
	VariantLocationNotFound:            {KindNotFound, UserLocationNFA01, "Location not found", "Location with ID {value} does not exist.", ""},
	VariantWorkExperienceNotFound:      {KindNotFound, UserWorkExpNFA01, "Work experience not found", "Work Experience with ID {value} does not exist.", ""},
	VariantGitHubUsernameNotFound:      {KindNotFound, UserGitHubNFA01, "GitHub username not found", "User with GitHub username '{value}' does not exist.", ""},
	VariantGitHubUsernameAlreadyExists: {KindAlreadyExists, UserGitHubAEA01, "GitHub username already exists", "User with GitHub username '{value}' already exists.", ""},
	VariantLeetcodeNotFound:            {KindNotFound, UserLeetCodeNFA01, "LeetCode record not found", "LeetCode record with ID {value} does not exist.", ""},
	VariantLeetcodeBadgeNotFound:       {KindNotFound, UserLeetCodeNFA02, "LeetCode badge not found", "LeetCode badge with ID {value} does not exist.", ""},
	VariantLeetcodeTagNotFound:         {KindNotFound, UserLeetCodeNFA03, "LeetCode tag not found", "LeetCode tag with ID {value} does not exist.", ""},
	VariantCertificationNotFound:       {KindNotFound, UserCertificationNFA01, "Certificate not found", "Certificate with ID '{value}' does not exist.", "No certifications found."},
	VariantCertificationAlreadyExists:  {KindAlreadyExists, UserCertificationAEA01, "Certificate already exists", "Certificate with ID '{value}' already exists.", ""},
	VariantLinksNotFound:               {KindNotFound, UserLinksNFA01, "Links not found", "Links with identifier {value} do not exist.", ""},
	VariantLinksAlreadyExists:          {KindAlreadyExists, UserLinksAEA01, "Links already exist", "Links already exist for user ID {value}.", ""},
	VariantVolunteeringNotFound:        {KindNotFound, UserVolunteeringNFA01, "Volunteering not found", "Volunteering entry with ID {value} does not exist.", ""},
	VariantProjectNotFound:             {KindNotFound, UserProjectNFA01, "Project not found", "Project with ID {value} does not exist.", ""},
	VariantEducationNotFound:           {KindNotFound, UserEducationNFA01, "Education not found", "Education with ID {value} does not exist.", ""},
	VariantPublicationNotFound:         {KindNotFound, UserPublicationNFA01, "Publication not found", "Publication with ID {value} does not exist.", ""},
	VariantDocumentNotFound:            {KindNotFound, UserDocumentNFA01, "Document not found", "Document with ID {value} does not exist.", ""},
	VariantOrganizationNotFound:        {KindNotFound, OpptOrgNFA01, "Organization not found", "Organization with ID {value} does not exist.", ""},
	VariantFellowshipNotFound:          {KindNotFound, OpptFelNFA01, "Fellowship not found", "Fellowship with ID {value} does not exist.", ""},
	VariantJobNotFound:                 {KindNotFound, OpptJobNFA01, "Job not found", "Job with ID {value} does not exist.", ""},
	VariantProjectOpportunityNotFound:  {KindNotFound, OpptProjNFA01, "Project opportunity not found", "Project opportunity with ID {value} does not exist.", ""},
	VariantInvalidTools:                {KindInvalidInput, OpptOrgValA01, "Invalid input", "Invalid {key}: {value}", ""},
}

var codePattern = regexp.MustCompile(`^[A-Z]+-[A-Z]+-[A-Z]+-[A-Z][0-9]{2}$`)

func init() {
	if err := checkRegistry(registry[:]); err != nil {
		panic(err)
	}
}

// checkRegistry verifies that every variant has a well-formed entry and that no
// code is bound twice.
func checkRegistry(entries []entry) error {
	seen := make(map[Code]int, len(entries))
	for i, e := range entries {
		if e.kind == 0 || e.code == "" || e.label == "" || e.template == "" {
			return fmt.Errorf("apperr: variant %d has no registry entry", i)
		}
		if !codePattern.MatchString(string(e.code)) {
			return fmt.Errorf("apperr: variant %d: malformed code %q", i, e.code)
		}
		if prev, dup := seen[e.code]; dup {
			return fmt.Errorf("apperr: code %s bound to variants %d and %d", e.code, prev, i)
		}
		seen[e.code] = i
	}
	return nil
}

func lookup(v Variant) entry {
	if int(v) >= len(registry) {
		return entry{}
	}
	return registry[v]
}

// Lookup returns the registry binding for v. ok is false for values outside
// the closed variant set.
func Lookup(v Variant) (code Code, status int, label string, ok bool) {
	if int(v) >= len(registry) {
		return "", 0, "", false
	}
	e := registry[v]
	return e.code, e.kind.Status(), e.label, true
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, variantCount)
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}
