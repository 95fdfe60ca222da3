package common

// Account rules shared by the account service and the CLI.
const (
	MinUsernameLength = 3
	MinPasswordLength = 8
)

// DemoPassword is the password given to the seeded demo accounts.
const DemoPassword = "asdfasdf"

// DemoUsernames lists the accounts created by the demo seeder.
var DemoUsernames = []string{"alice", "bob", "evil_bob"}
