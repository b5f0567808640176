package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin represents the admins table (dashboard operator accounts)
type Admin struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}

// Material represents the materials table
type Material struct {
	MaterialID       string         `gorm:"primaryKey;size:36" json:"material_id"`
	MaterialType     string         `gorm:"size:100;not null" json:"material_type"`
	Brand            string         `gorm:"size:100;not null" json:"brand"`
	Model            string         `gorm:"size:100;not null" json:"model"`
	Status           string         `gorm:"size:20;not null;default:'Available'" json:"status"`
	RegistrationDate time.Time      `gorm:"autoCreateTime" json:"registration_date"`
	UpdateDate       time.Time      `gorm:"autoUpdateTime" json:"update_date"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Material) TableName() string {
	return "materials"
}

// BeforeCreate assigns a UUID primary key
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialID == "" {
		m.MaterialID = uuid.New().String()
	}
	return nil
}

// User represents the users table (borrowers and staff, not admin accounts)
type User struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	FirstName        string         `gorm:"size:100;not null" json:"first_name"`
	LastName         string         `gorm:"size:100;not null" json:"last_name"`
	MiddleName       string         `gorm:"size:100" json:"middle_name,omitempty"`
	UserType         string         `gorm:"size:30;not null" json:"user_type"`
	Username         string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email            string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password         string         `gorm:"size:255;not null" json:"-"`
	PhoneNumber      string         `gorm:"size:20" json:"phone_number"`
	Status           string         `gorm:"size:20;not null;default:'Active'" json:"status"`
	RegistrationDate time.Time      `gorm:"autoCreateTime" json:"registration_date"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// Loan represents the loans table
type Loan struct {
	LoanID     string         `gorm:"primaryKey;size:36" json:"loan_id"`
	UserID     string         `gorm:"size:36;not null;index" json:"user_id"`
	MaterialID string         `gorm:"size:36;not null;index" json:"material_id"`
	LoanDate   time.Time      `gorm:"not null" json:"loan_date"`
	ReturnDate time.Time      `gorm:"not null" json:"return_date"`
	LoanStatus string         `gorm:"size:20;not null;default:'Active'" json:"loan_status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Material *Material `gorm:"foreignKey:MaterialID" json:"material,omitempty"`
}

func (Loan) TableName() string {
	return "loans"
}

// BeforeCreate assigns a UUID primary key
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.LoanID == "" {
		l.LoanID = uuid.New().String()
	}
	return nil
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Material{},
		&User{},
		&Loan{},
	)
}
