package domain

// Kingdom represents a kingdom listing recruiting migrating players
type Kingdom struct {
	ID             int    `json:"id" gorm:"primaryKey;column:id;type:integer;autoIncrement"`
	UserID         int    `json:"user_id" gorm:"index;not null;type:integer"`
	KingdomNumber  string `json:"kingdom_number" gorm:"uniqueIndex;not null;type:varchar(16)"`
	KingdomName    string `json:"kingdom_name" gorm:"not null;type:varchar(64)"`
	Seed           string `json:"seed" gorm:"not null;type:varchar(8)"`
	AveragePower   int    `json:"average_power" gorm:"not null"`
	KvkSeason      string `json:"kvk_season" gorm:"not null;type:varchar(32)"`
	MinimumPower   int    `json:"minimum_power" gorm:"not null"`
	Status         string `json:"status" gorm:"not null;type:varchar(32)"`
	KingdomType    string `json:"kingdom_type" gorm:"not null;type:varchar(32)"`
	Languages      string `json:"languages" gorm:"not null;type:varchar(128)"`
	BannerImageURL string `json:"banner_image_url,omitempty" gorm:"column:banner_image_url;type:varchar(256)"`
	Description    string `json:"description,omitempty" gorm:"type:text"`
	Requirements   string `json:"requirements,omitempty" gorm:"type:text"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for Kingdom
func (k Kingdom) TableName() string {
	return "kingdoms"
}

// KingdomUpdate carries a partial update of a kingdom listing.
// Nil fields are left untouched.
type KingdomUpdate struct {
	KingdomName    *string `json:"kingdom_name,omitempty"`
	Seed           *string `json:"seed,omitempty"`
	AveragePower   *int    `json:"average_power,omitempty"`
	KvkSeason      *string `json:"kvk_season,omitempty"`
	MinimumPower   *int    `json:"minimum_power,omitempty"`
	Status         *string `json:"status,omitempty"`
	KingdomType    *string `json:"kingdom_type,omitempty"`
	Languages      *string `json:"languages,omitempty"`
	BannerImageURL *string `json:"banner_image_url,omitempty"`
	Description    *string `json:"description,omitempty"`
	Requirements   *string `json:"requirements,omitempty"`
}

// KingdomRepository defines the interface for kingdom data
type KingdomRepository interface {
	GetAll() ([]*Kingdom, error)
	GetByID(id int) (*Kingdom, error)
	GetByUserID(userID int) (*Kingdom, error)
	GetByNumber(kingdomNumber string) (*Kingdom, error)
	Create(kingdom *Kingdom) error
	Update(kingdom *Kingdom) error
}

// KingdomUseCase defines the interface for kingdom business logic
type KingdomUseCase interface {
	List(filter KingdomFilter) ([]*Kingdom, error)
	Facets() (*KingdomFacetOptions, error)
	GetByID(id int) (*Kingdom, error)
	GetByUserID(userID int) (*Kingdom, error)
	Create(kingdom *Kingdom) (*Kingdom, error)
	Update(id int, update KingdomUpdate) (*Kingdom, error)
}
