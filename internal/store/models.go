package store

import (
	"time"
)

type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Section struct {
	ID                  int64     `json:"id"`
	Page                string    `json:"page"`
	SectionName         string    `json:"section_name"`
	Title               string    `json:"title"`
	Subtitle            string    `json:"subtitle"`
	Content             string    `json:"content"`
	ImageURL            string    `json:"image_url"`
	ButtonText          string    `json:"button_text"`
	ButtonLink          string    `json:"button_link"`
	ButtonTextSecondary string    `json:"button_text_secondary"`
	ButtonLinkSecondary string    `json:"button_link_secondary"`
	IsActive            bool      `json:"is_active"`
	SortOrder           int64     `json:"sort_order"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type AboutContent struct {
	ID          int64     `json:"id"`
	SectionType string    `json:"section_type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ContactInfo struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	Icon      string    `json:"icon"`
	Link      string    `json:"link"`
	IsActive  bool      `json:"is_active"`
	SortOrder int64     `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Player struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	ImageURL       string    `json:"image_url"`
	Experience     string    `json:"experience"`
	Description    string    `json:"description"`
	IsOwner        bool      `json:"is_owner"`
	OwnerTitle     string    `json:"owner_title"`
	IsCaptain      bool      `json:"is_captain"`
	IsManagement   bool      `json:"is_management"`
	ManagementRole string    `json:"management_role"`
	Matches        int64     `json:"matches"`
	Runs           int64     `json:"runs"`
	Wickets        int64     `json:"wickets"`
	Season         string    `json:"season"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type GalleryImage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Season      string    `json:"season"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamStat struct {
	ID          int64     `json:"id"`
	Label       string    `json:"label"`
	Value       string    `json:"value"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamInfo struct {
	ID               int64     `json:"id"`
	HomeGround       string    `json:"home_ground"`
	FoundedYear      string    `json:"founded_year"`
	TrainingSchedule string    `json:"training_schedule"`
	TeamSize         string    `json:"team_size"`
	AdditionalInfo   string    `json:"additional_info"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Event struct {
	ID         int64     `json:"id"`
	Level      string    `json:"level"`
	Category   string    `json:"category"`
	Message    string    `json:"message"`
	ActorEmail string    `json:"actor_email"`
	IpAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	RequestUrl string    `json:"request_url"`
	Metadata   string    `json:"metadata"`
	CreatedAt  time.Time `json:"created_at"`
}
