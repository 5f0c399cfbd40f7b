package operation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            string       `gorm:"primarykey;size:36" json:"id"`
	ProviderId    string       `gorm:"size:64;uniqueIndex;not null" json:"provider_id"`
	Email         string       `gorm:"size:128;uniqueIndex;not null" json:"email"`
	FirstName     *string      `gorm:"size:64" json:"first_name"`
	LastName      *string      `gorm:"size:64" json:"last_name"`
	Role          Role         `gorm:"size:16;default:USER;not null" json:"role"`
	LicenseNumber *string      `gorm:"size:32" json:"license_number"`
	LicenseExpiry *time.Time   `json:"license_expiry"`
	Aircraft      []*Aircraft  `gorm:"foreignKey:UserId;references:ID" json:"-"`
	Flights       []*Flight    `gorm:"foreignKey:UserId;references:ID" json:"-"`
	Preferences   *Preferences `gorm:"foreignKey:UserId;references:ID" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (user *User) BeforeCreate(_ *gorm.DB) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return nil
}

func (user *User) FullName() string {
	name := ""
	if user.FirstName != nil {
		name = *user.FirstName
	}
	if user.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *user.LastName
	}
	return name
}

// AircraftStatusDefault status是自由文本, 只有缺省值有约定
const AircraftStatusDefault = "operational"

type Aircraft struct {
	ID           string    `gorm:"primarykey;size:36" json:"id"`
	UserId       string    `gorm:"size:36;uniqueIndex:userAircraftReg;not null" json:"user_id"`
	Make         string    `gorm:"size:100;not null" json:"make"`
	Model        string    `gorm:"size:100;not null" json:"model"`
	Registration string    `gorm:"size:20;uniqueIndex:userAircraftReg;not null" json:"registration"`
	Status       string    `gorm:"size:64;default:operational;not null" json:"status"`
	ImageUrl     *string   `gorm:"size:256" json:"image_url"`
	IsArchived   bool      `gorm:"default:0;not null" json:"is_archived"`
	Flights      []*Flight `gorm:"foreignKey:AircraftId;references:ID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (aircraft *Aircraft) BeforeCreate(_ *gorm.DB) error {
	if aircraft.ID == "" {
		aircraft.ID = uuid.NewString()
	}
	return nil
}

type Flight struct {
	ID            string    `gorm:"primarykey;size:36" json:"id"`
	UserId        string    `gorm:"size:36;index;not null" json:"user_id"`
	AircraftId    string    `gorm:"size:36;index;not null" json:"aircraft_id"`
	Aircraft      *Aircraft `gorm:"foreignKey:AircraftId;references:ID" json:"aircraft,omitempty"`
	Date          time.Time `gorm:"index;not null" json:"date"`
	DepartureCode string    `gorm:"size:4;not null" json:"departure_code"`
	ArrivalCode   string    `gorm:"size:4;not null" json:"arrival_code"`
	Duration      float64   `gorm:"not null" json:"duration"`
	PicTime       float64   `gorm:"default:0;not null" json:"pic_time"`
	DualTime      float64   `gorm:"default:0;not null" json:"dual_time"`
	DayLandings   int       `gorm:"default:0;not null" json:"day_landings"`
	NightLandings int       `gorm:"default:0;not null" json:"night_landings"`
	Landings      int       `gorm:"default:0;not null" json:"landings"`
	Remarks       string    `gorm:"size:500" json:"remarks"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (flight *Flight) BeforeCreate(_ *gorm.DB) error {
	if flight.ID == "" {
		flight.ID = uuid.NewString()
	}
	return nil
}

type Preferences struct {
	ID          string  `gorm:"primarykey;size:36" json:"id"`
	UserId      string  `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	HomeAirport string  `gorm:"size:4;default:KJFK;not null" json:"home_airport"`
	Theme       string  `gorm:"size:16;default:SYSTEM;not null" json:"theme"`
	Units       string  `gorm:"size:16;default:METRIC;not null" json:"units"`
	Currency    string  `gorm:"size:8;default:USD;not null" json:"currency"`
	// DefaultAircraftId 默认航空器, 可为空
	DefaultAircraftId *string   `gorm:"size:36" json:"default_aircraft_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (preferences *Preferences) BeforeCreate(_ *gorm.DB) error {
	if preferences.ID == "" {
		preferences.ID = uuid.NewString()
	}
	return nil
}

type AuditLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Actor      string    `gorm:"size:36;index;not null" json:"actor"`
	Action     EventType `gorm:"size:32;index;not null" json:"action"`
	EntityType string    `gorm:"size:32;not null" json:"entity_type"`
	EntityId   string    `gorm:"size:36;index" json:"entity_id"`
	OldValues  string    `gorm:"type:text" json:"old_values"`
	NewValues  string    `gorm:"type:text" json:"new_values"`
	Changes    string    `gorm:"type:text" json:"changes"`
	Ip         string    `gorm:"size:64" json:"ip"`
	UserAgent  string    `gorm:"size:256" json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
}

type Feedback struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Kind      string    `gorm:"size:16;default:FEEDBACK;not null" json:"kind"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Email     string    `gorm:"size:128;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Ip        string    `gorm:"size:64" json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}
