package validation

type ProfileInput struct {
	Handle    string
	Status    string
	Skills    string
	Website   string
	Youtube   string
	Twitter   string
	Facebook  string
	Linkedin  string
	Instagram string
}

// ValidateProfileInput valida los datos de creación o edición de perfil.
func ValidateProfileInput(in ProfileInput) Result {
	errs := make(map[string]string)

	if !lengthBetween(in.Handle, 2, 40) {
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}
	if isEmpty(in.Handle) {
		errs["handle"] = "Profile handle is required"
	}

	if isEmpty(in.Status) {
		errs["status"] = "Status field is required"
	}
	if isEmpty(in.Skills) {
		errs["skills"] = "Skills field is required"
	}

	// URLs sociales son opcionales, pero deben ser válidas si vienen.
	optionalURLs := map[string]string{
		"website":   in.Website,
		"youtube":   in.Youtube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.Linkedin,
		"instagram": in.Instagram,
	}
	for field, value := range optionalURLs {
		if !isEmpty(value) && !isURL(value) {
			errs[field] = "Not a valid URL"
		}
	}

	return newResult(errs)
}

type ExperienceInput struct {
	Title   string
	Company string
	From    string
}

// ValidateExperienceInput valida una entrada de experiencia laboral.
func ValidateExperienceInput(in ExperienceInput) Result {
	errs := make(map[string]string)

	if isEmpty(in.Title) {
		errs["title"] = "Job title field is required"
	}
	if isEmpty(in.Company) {
		errs["company"] = "Company field is required"
	}
	if isEmpty(in.From) {
		errs["from"] = "From date field is required"
	}

	return newResult(errs)
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
}

// ValidateEducationInput valida una entrada de educación.
func ValidateEducationInput(in EducationInput) Result {
	errs := make(map[string]string)

	if isEmpty(in.School) {
		errs["school"] = "School field is required"
	}
	if isEmpty(in.Degree) {
		errs["degree"] = "Degree field is required"
	}
	if isEmpty(in.FieldOfStudy) {
		errs["fieldofstudy"] = "Field of study field is required"
	}
	if isEmpty(in.From) {
		errs["from"] = "From date field is required"
	}

	return newResult(errs)
}
