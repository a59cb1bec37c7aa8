package validation

// ValidatePostInput valida el texto de un post o comentario.
func ValidatePostInput(text string) Result {
	errs := make(map[string]string)

	if !lengthBetween(text, 10, 200) {
		errs["text"] = "Post must be between 10 and 200 characters"
	}
	if isEmpty(text) {
		errs["text"] = "Text field is required"
	}

	return newResult(errs)
}
