/*
Package rapport models a person whose replies depend on whether they have met
their counterpart before.

A Person starts in FirstMeeting. Greeting or saying farewell prints a line
chosen from a fixed transition table and moves the person to Acquainted, which
absorbs every further action until ResetState returns it to FirstMeeting.

# Usage

	joe := domain.NewPerson()
	joe.Greet()      // hi, never seen each other before, I'm Joe
	joe.Farewell()   // bye, met each other earlier, I'm Joe
	joe.ResetState() // silent
	joe.Farewell()   // bye, never seen each other before, I'm Joe

The pkg/session Manager drives many independent people over a PersonStore
(memory, file or Redis), and the HTTP and MCP adapters expose it remotely.
*/
package rapport
