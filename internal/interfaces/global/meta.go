// Package global
package global

import "flag"

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	EnvFilePath    = flag.String("env", ".env", "Path to environment file")
	LogFilePath    = flag.String("log-dir", "./logs", "Path to log directory")
	DevTokenFor    = flag.String("dev-token", "", "Print a signed session token for the given provider user id and exit")
	DevTokenEmail  = flag.String("dev-token-email", "", "Email claim to embed when -dev-token is used")
)

const (
	AppVersion    = "0.3.0"
	ConfigVersion = "0.3.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	// EnvAdminProviderIds 管理员外部身份ID白名单, 逗号分隔
	EnvAdminProviderIds = "ADMIN_PROVIDER_IDS"
	// EnvAdminEmails 管理员邮箱白名单, 逗号分隔
	EnvAdminEmails = "ADMIN_EMAILS"

	EnvIdentityApiToken      = "IDENTITY_API_TOKEN"
	EnvIdentityWebhookSecret = "IDENTITY_WEBHOOK_SECRET"
	EnvSessionJwtSecret      = "SESSION_JWT_SECRET"
)
