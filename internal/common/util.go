package common

// WipeByteArray zeroes b. Passwords read from the terminal are wiped once
// they have been handed to the login form.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
