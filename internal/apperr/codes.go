package apperr

// Code is a stable client-facing error identifier of the form
// AREA-FEATURE-CATEGORY-SEQ. Published codes are never reused or repurposed.
type Code string

// Infrastructure codes shared by every feature area.
const (
	CodeGeneric        Code = "GEN-ERR-000"
	CodeValidation     Code = "GEN-VAL-001"
	CodeDatabase       Code = "DB-ERR-001"
	CodeDatabaseRLS    Code = "DB-RLS-001"
	CodeDatabaseUnique Code = "DB-UNQ-001"
	CodeDatabaseFK     Code = "DB-FK-001"
)

// Codes owned by the HTTP surface itself.
const (
	CodeRouteNotFound      Code = "GEN-ROUTE-NF-A01"
	CodeMethodNotAllowed   Code = "GEN-ROUTE-MNA-A01"
	CodeRateLimited        Code = "GEN-RATE-LIM-A01"
	CodeInvalidIdempotency Code = "GEN-IDEM-VAL-A01"
	CodeBodyTooLarge       Code = "GEN-BODY-VAL-A01"
)

// Feature codes. Categories: DB (write failures), SRV (unexpected), AUTH,
// VAL (input), NF (not found), AE (already exists). Only some are bound to a
// Variant today; the rest are reserved.
const (
	// Opportunities: project opportunities
	OpptProjDBA01   Code = "OPPT-PROJ-DB-A01"
	OpptProjDBA02   Code = "OPPT-PROJ-DB-A02"
	OpptProjDBA03   Code = "OPPT-PROJ-DB-A03"
	OpptProjSrvA01  Code = "OPPT-PROJ-SRV-A01"
	OpptProjSrvA02  Code = "OPPT-PROJ-SRV-A02"
	OpptProjAuthA01 Code = "OPPT-PROJ-AUTH-A01"
	OpptProjAuthA02 Code = "OPPT-PROJ-AUTH-A02"
	OpptProjValA01  Code = "OPPT-PROJ-VAL-A01"
	OpptProjValA02  Code = "OPPT-PROJ-VAL-A02"
	OpptProjNFA01   Code = "OPPT-PROJ-NF-A01"

	// Opportunities: organizations
	OpptOrgDBA01   Code = "OPPT-ORG-DB-A01"
	OpptOrgDBA02   Code = "OPPT-ORG-DB-A02"
	OpptOrgDBA03   Code = "OPPT-ORG-DB-A03"
	OpptOrgSrvA01  Code = "OPPT-ORG-SRV-A01"
	OpptOrgSrvA02  Code = "OPPT-ORG-SRV-A02"
	OpptOrgAuthA01 Code = "OPPT-ORG-AUTH-A01"
	OpptOrgAuthA02 Code = "OPPT-ORG-AUTH-A02"
	OpptOrgValA01  Code = "OPPT-ORG-VAL-A01"
	OpptOrgValA02  Code = "OPPT-ORG-VAL-A02"
	OpptOrgNFA01   Code = "OPPT-ORG-NF-A01"

	// Opportunities: fellowships
	OpptFelDBA01   Code = "OPPT-FEL-DB-A01"
	OpptFelDBA02   Code = "OPPT-FEL-DB-A02"
	OpptFelDBA03   Code = "OPPT-FEL-DB-A03"
	OpptFelSrvA01  Code = "OPPT-FEL-SRV-A01"
	OpptFelSrvA02  Code = "OPPT-FEL-SRV-A02"
	OpptFelAuthA01 Code = "OPPT-FEL-AUTH-A01"
	OpptFelAuthA02 Code = "OPPT-FEL-AUTH-A02"
	OpptFelValA01  Code = "OPPT-FEL-VAL-A01"
	OpptFelValA02  Code = "OPPT-FEL-VAL-A02"
	OpptFelNFA01   Code = "OPPT-FEL-NF-A01"

	// Opportunities: jobs
	OpptJobDBA01   Code = "OPPT-JOB-DB-A01"
	OpptJobDBA02   Code = "OPPT-JOB-DB-A02"
	OpptJobDBA03   Code = "OPPT-JOB-DB-A03"
	OpptJobSrvA01  Code = "OPPT-JOB-SRV-A01"
	OpptJobSrvA02  Code = "OPPT-JOB-SRV-A02"
	OpptJobAuthA01 Code = "OPPT-JOB-AUTH-A01"
	OpptJobAuthA02 Code = "OPPT-JOB-AUTH-A02"
	OpptJobValA01  Code = "OPPT-JOB-VAL-A01"
	OpptJobValA02  Code = "OPPT-JOB-VAL-A02"
	OpptJobNFA01   Code = "OPPT-JOB-NF-A01"

	// Users: user
	UserUserDBA01   Code = "USER-USER-DB-A01"
	UserUserDBA02   Code = "USER-USER-DB-A02"
	UserUserDBA03   Code = "USER-USER-DB-A03"
	UserUserSrvA01  Code = "USER-USER-SRV-A01"
	UserUserSrvA02  Code = "USER-USER-SRV-A02"
	UserUserAuthA01 Code = "USER-USER-AUTH-A01"
	UserUserAuthA02 Code = "USER-USER-AUTH-A02"
	UserUserValA01  Code = "USER-USER-VAL-A01"
	UserUserValA02  Code = "USER-USER-VAL-A02"
	UserUserNFA01   Code = "USER-USER-NF-A01"

	// Users: profile
	UserProfileDBA01   Code = "USER-PROFILE-DB-A01"
	UserProfileDBA02   Code = "USER-PROFILE-DB-A02"
	UserProfileDBA03   Code = "USER-PROFILE-DB-A03"
	UserProfileSrvA01  Code = "USER-PROFILE-SRV-A01"
	UserProfileSrvA02  Code = "USER-PROFILE-SRV-A02"
	UserProfileAuthA01 Code = "USER-PROFILE-AUTH-A01"
	UserProfileAuthA02 Code = "USER-PROFILE-AUTH-A02"
	UserProfileValA01  Code = "USER-PROFILE-VAL-A01"
	UserProfileValA02  Code = "USER-PROFILE-VAL-A02"
	UserProfileNFA01   Code = "USER-PROFILE-NF-A01"
	UserProfileAEA01   Code = "USER-PROFILE-AE-A01"

	// Users: location
	UserLocationDBA01   Code = "USER-LOCATION-DB-A01"
	UserLocationDBA02   Code = "USER-LOCATION-DB-A02"
	UserLocationDBA03   Code = "USER-LOCATION-DB-A03"
	UserLocationSrvA01  Code = "USER-LOCATION-SRV-A01"
	UserLocationSrvA02  Code = "USER-LOCATION-SRV-A02"
	UserLocationAuthA01 Code = "USER-LOCATION-AUTH-A01"
	UserLocationAuthA02 Code = "USER-LOCATION-AUTH-A02"
	UserLocationValA01  Code = "USER-LOCATION-VAL-A01"
	UserLocationValA02  Code = "USER-LOCATION-VAL-A02"
	UserLocationNFA01   Code = "USER-LOCATION-NF-A01"

	// Users: work experience
	UserWorkExpDBA01   Code = "USER-WORKEXP-DB-A01"
	UserWorkExpDBA02   Code = "USER-WORKEXP-DB-A02"
	UserWorkExpDBA03   Code = "USER-WORKEXP-DB-A03"
	UserWorkExpSrvA01  Code = "USER-WORKEXP-SRV-A01"
	UserWorkExpSrvA02  Code = "USER-WORKEXP-SRV-A02"
	UserWorkExpAuthA01 Code = "USER-WORKEXP-AUTH-A01"
	UserWorkExpAuthA02 Code = "USER-WORKEXP-AUTH-A02"
	UserWorkExpValA01  Code = "USER-WORKEXP-VAL-A01"
	UserWorkExpValA02  Code = "USER-WORKEXP-VAL-A02"
	UserWorkExpNFA01   Code = "USER-WORKEXP-NF-A01"

	// Users: LeetCode
	UserLeetCodeDBA01  Code = "USER-LEETCODE-DB-A01"
	UserLeetCodeDBA02  Code = "USER-LEETCODE-DB-A02"
	UserLeetCodeDBA03  Code = "USER-LEETCODE-DB-A03"
	UserLeetCodeSrvA01 Code = "USER-LEETCODE-SRV-A01"
	UserLeetCodeSrvA02 Code = "USER-LEETCODE-SRV-A02"
	UserLeetCodeValA01 Code = "USER-LEETCODE-VAL-A01"
	UserLeetCodeNFA01  Code = "USER-LEETCODE-NF-A01"
	UserLeetCodeNFA02  Code = "USER-LEETCODE-NF-A02"
	UserLeetCodeNFA03  Code = "USER-LEETCODE-NF-A03"

	// Users: certifications
	UserCertificationDBA01   Code = "USER-CERTIFICATION-DB-A01"
	UserCertificationDBA02   Code = "USER-CERTIFICATION-DB-A02"
	UserCertificationDBA03   Code = "USER-CERTIFICATION-DB-A03"
	UserCertificationSrvA01  Code = "USER-CERTIFICATION-SRV-A01"
	UserCertificationSrvA02  Code = "USER-CERTIFICATION-SRV-A02"
	UserCertificationAuthA01 Code = "USER-CERTIFICATION-AUTH-A01"
	UserCertificationAuthA02 Code = "USER-CERTIFICATION-AUTH-A02"
	UserCertificationValA01  Code = "USER-CERTIFICATION-VAL-A01"
	UserCertificationValA02  Code = "USER-CERTIFICATION-VAL-A02"
	UserCertificationNFA01   Code = "USER-CERTIFICATION-NF-A01"
	UserCertificationAEA01   Code = "USER-CERTIFICATION-AE-A01"

	// Users: links
	UserLinksDBA01  Code = "USER-LINKS-DB-A01"
	UserLinksDBA02  Code = "USER-LINKS-DB-A02"
	UserLinksDBA03  Code = "USER-LINKS-DB-A03"
	UserLinksSrvA01 Code = "USER-LINKS-SRV-A01"
	UserLinksSrvA02 Code = "USER-LINKS-SRV-A02"
	UserLinksValA01 Code = "USER-LINKS-VAL-A01"
	UserLinksValA02 Code = "USER-LINKS-VAL-A02"
	UserLinksNFA01  Code = "USER-LINKS-NF-A01"
	UserLinksAEA01  Code = "USER-LINKS-AE-A01"

	// Users: GitHub username
	UserGitHubDBA01  Code = "USER-GITHUB-DB-A01"
	UserGitHubDBA02  Code = "USER-GITHUB-DB-A02"
	UserGitHubDBA03  Code = "USER-GITHUB-DB-A03"
	UserGitHubSrvA01 Code = "USER-GITHUB-SRV-A01"
	UserGitHubSrvA02 Code = "USER-GITHUB-SRV-A02"
	UserGitHubValA01 Code = "USER-GITHUB-VAL-A01"
	UserGitHubValA02 Code = "USER-GITHUB-VAL-A02"
	UserGitHubNFA01  Code = "USER-GITHUB-NF-A01"
	UserGitHubAEA01  Code = "USER-GITHUB-AE-A01"

	// Users: volunteering
	UserVolunteeringNFA01 Code = "USER-VOLUNTEERING-NF-A01"

	// Users: projects
	UserProjectDBA01   Code = "USER-PROJECT-DB-A01"
	UserProjectDBA02   Code = "USER-PROJECT-DB-A02"
	UserProjectDBA03   Code = "USER-PROJECT-DB-A03"
	UserProjectSrvA01  Code = "USER-PROJECT-SRV-A01"
	UserProjectSrvA02  Code = "USER-PROJECT-SRV-A02"
	UserProjectAuthA01 Code = "USER-PROJECT-AUTH-A01"
	UserProjectAuthA02 Code = "USER-PROJECT-AUTH-A02"
	UserProjectValA01  Code = "USER-PROJECT-VAL-A01"
	UserProjectValA02  Code = "USER-PROJECT-VAL-A02"
	UserProjectNFA01   Code = "USER-PROJECT-NF-A01"

	// Users: publications
	UserPublicationNFA01 Code = "USER-PUBLICATION-NF-A01"

	// Users: education
	UserEducationDBA01   Code = "USER-EDUCATION-DB-A01"
	UserEducationDBA02   Code = "USER-EDUCATION-DB-A02"
	UserEducationDBA03   Code = "USER-EDUCATION-DB-A03"
	UserEducationSrvA01  Code = "USER-EDUCATION-SRV-A01"
	UserEducationSrvA02  Code = "USER-EDUCATION-SRV-A02"
	UserEducationAuthA01 Code = "USER-EDUCATION-AUTH-A01"
	UserEducationAuthA02 Code = "USER-EDUCATION-AUTH-A02"
	UserEducationValA01  Code = "USER-EDUCATION-VAL-A01"
	UserEducationValA02  Code = "USER-EDUCATION-VAL-A02"
	UserEducationNFA01   Code = "USER-EDUCATION-NF-A01"

	// Users: documents
	UserDocumentDBA01   Code = "USER-DOCUMENT-DB-A01"
	UserDocumentDBA02   Code = "USER-DOCUMENT-DB-A02"
	UserDocumentDBA03   Code = "USER-DOCUMENT-DB-A03"
	UserDocumentSrvA01  Code = "USER-DOCUMENT-SRV-A01"
	UserDocumentSrvA02  Code = "USER-DOCUMENT-SRV-A02"
	UserDocumentAuthA01 Code = "USER-DOCUMENT-AUTH-A01"
	UserDocumentAuthA02 Code = "USER-DOCUMENT-AUTH-A02"
	UserDocumentValA01  Code = "USER-DOCUMENT-VAL-A01"
	UserDocumentValA02  Code = "USER-DOCUMENT-VAL-A02"
	UserDocumentNFA01   Code = "USER-DOCUMENT-NF-A01"
)
