package validation

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Password2 string
}

// ValidateRegisterInput valida los datos de registro de usuario.
func ValidateRegisterInput(in RegisterInput) Result {
	errs := make(map[string]string)

	if !lengthBetween(in.Name, 2, 30) {
		errs["name"] = "Name must be between 2 and 30 characters"
	}
	if isEmpty(in.Name) {
		errs["name"] = "Name field is required"
	}

	if !isEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}
	if isEmpty(in.Email) {
		errs["email"] = "Email field is required"
	}

	if !lengthBetween(in.Password, 6, 30) {
		errs["password"] = "Password must be at least 6 characters"
	}
	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	}

	if in.Password != in.Password2 {
		errs["password2"] = "Passwords must match"
	}
	if isEmpty(in.Password2) {
		errs["password2"] = "Confirm Password field is required"
	}

	return newResult(errs)
}

type LoginInput struct {
	Email    string
	Password string
}

// ValidateLoginInput valida los datos de inicio de sesión.
func ValidateLoginInput(in LoginInput) Result {
	errs := make(map[string]string)

	if !isEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}
	if isEmpty(in.Email) {
		errs["email"] = "Email field is required"
	}

	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	}

	return newResult(errs)
}
