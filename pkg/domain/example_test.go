package domain_test

import "github.com/aretw0/rapport/pkg/domain"

func ExamplePerson() {
	joe := domain.NewPerson()

	joe.Greet()
	joe.Farewell()
	joe.Greet()

	joe.ResetState()

	joe.Farewell()
	joe.Greet()

	// Output:
	// hi, never seen each other before, I'm Joe
	// bye, met each other earlier, I'm Joe
	// hi, met each other earlier, I'm Joe
	// bye, never seen each other before, I'm Joe
	// hi, met each other earlier, I'm Joe
}
