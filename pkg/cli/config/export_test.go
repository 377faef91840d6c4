package config

func NewPolicyForTest(filePath string) *Policy {
	return &Policy{filePath: filePath}
}

func NewAuthForTest(jwtSecret, audience string, noAuthentication bool) *Auth {
	return &Auth{jwtSecret: jwtSecret, audience: audience, noAuthentication: noAuthentication}
}

func NewRollCallForTest(timezone string) *RollCall {
	return &RollCall{timezone: timezone}
}

func NewTimetableForTest(baseURL, school, user string) *Timetable {
	return &Timetable{baseURL: baseURL, school: school, user: user}
}
