package config

// MailConfig controls delivery of the rendered report.
type MailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	From     string
	Password string
	To       []string
}

func loadMail() MailConfig {
	return MailConfig{
		Enabled:  boolEnvOrDefault(envMailOn, defaultMailOn),
		Host:     envOrDefault(envSMTPHost, defaultSMTPHost),
		Port:     intEnvOrDefault(envSMTPPort, defaultSMTPPort),
		From:     envOrDefault(envFromEmail, ""),
		Password: envOrDefault(envFromPassword, ""),
		To:       listEnv(envToEmail),
	}
}

func (m MailConfig) validate() error {
	switch {
	case m.Host == "":
		return missing(envSMTPHost)
	case m.From == "":
		return missing(envFromEmail)
	case m.Password == "":
		return missing(envFromPassword)
	case len(m.To) == 0:
		return missing(envToEmail)
	}
	return nil
}
