package models

// Messaging platforms a campaign or contact can target.
const (
	PlatformWhatsApp  = "whatsapp"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTelegram  = "telegram"
	PlatformSMS       = "sms"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
)

// PlatformInfo carries the display metadata the landing and campaign
// pages render for each supported platform.
type PlatformInfo struct {
	Key         string
	Name        string
	Description string
}

// Platforms lists every supported platform in display order.
var Platforms = []PlatformInfo{
	{PlatformWhatsApp, "WhatsApp", "Automated messaging, broadcast campaigns, and customer support with advanced WhatsApp Business API integration."},
	{PlatformInstagram, "Instagram", "Content scheduling, story automation, and engagement tracking with advanced Instagram API features."},
	{PlatformFacebook, "Facebook", "Page management, ad campaign automation, and community engagement with Facebook Graph API."},
	{PlatformTelegram, "Telegram", "Channel management, bot automation, and subscriber engagement through Telegram Bot API."},
	{PlatformSMS, "SMS", "Bulk SMS campaigns, automated sequences, and delivery tracking with global carrier networks."},
	{PlatformTikTok, "TikTok", "Content optimization, trend analysis, and engagement automation for viral marketing campaigns."},
	{PlatformYouTube, "YouTube", "Video marketing automation, channel management, and subscriber engagement tracking."},
}

// DashboardPlatforms is the subset the dashboard aggregate breaks
// campaign counts down by. YouTube is deliberately absent; the
// original dashboard never counted it.
var DashboardPlatforms = []string{
	PlatformWhatsApp,
	PlatformInstagram,
	PlatformFacebook,
	PlatformTelegram,
	PlatformSMS,
	PlatformTikTok,
}
