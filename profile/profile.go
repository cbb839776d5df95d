// Package profile holds the developer profile data: personal info, skills,
// interests, and contact handles. Everything is fixed at compile time; the
// providers exist so external tooling (e.g. a portfolio-site generator) can
// import this module as a static data source.
package profile

// PersonalInfo is the core identity block of the profile.
type PersonalInfo struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	Role          string `json:"role"`
	Motto         string `json:"motto"`
	Education     string `json:"education"`
	Certification string `json:"certification"`
}

// Profile is the aggregate of the personal fields plus the nested skills,
// interests, and contact mappings. Built once per run by Aggregate.
type Profile struct {
	PersonalInfo
	Skills    map[string][]string `json:"skills"`
	Interests map[string][]string `json:"interests"`
	Contact   map[string]string   `json:"contact"`
}

// Personal returns the fixed personal info block.
func Personal() PersonalInfo {
	return PersonalInfo{
		Name:          "Javier Argüeso",
		Location:      "Badajoz, España",
		Role:          "DevOps Engineer",
		Motto:         "Destroy Every Version On Production Servers",
		Education:     "Ingeniería Informática - Universidad de Extremadura",
		Certification: "Google Cloud Associate Engineer",
	}
}

// Skills returns skills grouped by category. The returned map and its
// slices are fresh copies; callers may mutate them freely.
func Skills() map[string][]string {
	return map[string][]string{
		"cloud":       {"Google Cloud", "AWS", "Azure"},
		"automation":  {"Kubernetes", "Docker", "Jenkins"},
		"programming": {"Python", "Bash"},
		"ci_cd":       {"GitLab CI/CD", "Azure DevOps"},
	}
}

// SkillCategories returns the canonical display order of skill categories.
// Go maps don't preserve insertion order, so ordering lives here.
func SkillCategories() []string {
	return []string{"cloud", "automation", "programming", "ci_cd"}
}

// Interests returns interests grouped by category, as fresh copies.
func Interests() map[string][]string {
	return map[string][]string{
		"tech":     {"Cloud Architecture", "Automation", "DevSecOps"},
		"personal": {"Metal Music", "Craft Beer", "Artisan Cheese"},
	}
}

// InterestCategories returns the canonical display order of interest categories.
func InterestCategories() []string {
	return []string{"tech", "personal"}
}

// Contact returns platform → handle pairs, as a fresh copy.
func Contact() map[string]string {
	return map[string]string{
		"github":    "srcheesedev",
		"linkedin":  "javier-argueso-soto",
		"instagram": "srcheese.dev",
	}
}

// ContactPlatforms returns the canonical display order of contact platforms.
func ContactPlatforms() []string {
	return []string{"github", "linkedin", "instagram"}
}

// Aggregate merges the four providers into a single Profile.
func Aggregate() Profile {
	return Profile{
		PersonalInfo: Personal(),
		Skills:       Skills(),
		Interests:    Interests(),
		Contact:      Contact(),
	}
}
