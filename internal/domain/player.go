package domain

// Player represents a player profile looking for a kingdom
type Player struct {
	ID              int    `json:"id" gorm:"primaryKey;column:id;type:integer;autoIncrement"`
	UserID          int    `json:"user_id" gorm:"index;not null;type:integer"`
	InGameName      string `json:"in_game_name" gorm:"not null;type:varchar(64)"`
	GameID          string `json:"game_id" gorm:"not null;type:varchar(32)"`
	Power           int    `json:"power" gorm:"not null"`
	KillPoints      int    `json:"kill_points" gorm:"not null"`
	DeadTroops      int    `json:"dead_troops" gorm:"not null"`
	VIPLevel        int    `json:"vip_level" gorm:"column:vip_level;not null"`
	HasTier5        bool   `json:"has_tier5" gorm:"column:has_tier5;not null;default:false"`
	MainTroopType   string `json:"main_troop_type" gorm:"not null;type:varchar(32)"`
	PlayStyle       string `json:"play_style" gorm:"not null;type:varchar(32)"`
	Languages       string `json:"languages" gorm:"not null;type:varchar(128)"`
	ProfileImageURL string `json:"profile_image_url,omitempty" gorm:"column:profile_image_url;type:varchar(256)"`
	Available       bool   `json:"available" gorm:"not null;default:true"`
	AdditionalInfo  string `json:"additional_info,omitempty" gorm:"type:text"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// PlayerUpdate carries a partial update of a player profile.
// Nil fields are left untouched.
type PlayerUpdate struct {
	InGameName      *string `json:"in_game_name,omitempty"`
	GameID          *string `json:"game_id,omitempty"`
	Power           *int    `json:"power,omitempty"`
	KillPoints      *int    `json:"kill_points,omitempty"`
	DeadTroops      *int    `json:"dead_troops,omitempty"`
	VIPLevel        *int    `json:"vip_level,omitempty"`
	HasTier5        *bool   `json:"has_tier5,omitempty"`
	MainTroopType   *string `json:"main_troop_type,omitempty"`
	PlayStyle       *string `json:"play_style,omitempty"`
	Languages       *string `json:"languages,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	Available       *bool   `json:"available,omitempty"`
	AdditionalInfo  *string `json:"additional_info,omitempty"`
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetAll() ([]*Player, error)
	GetByID(id int) (*Player, error)
	GetByUserID(userID int) (*Player, error)
	Create(player *Player) error
	Update(player *Player) error
}

// PlayerUseCase defines the interface for player business logic
type PlayerUseCase interface {
	List(filter PlayerFilter) ([]*Player, error)
	Facets() (*PlayerFacetOptions, error)
	GetByID(id int) (*Player, error)
	GetByUserID(userID int) (*Player, error)
	Create(player *Player) (*Player, error)
	Update(id int, update PlayerUpdate) (*Player, error)
}
