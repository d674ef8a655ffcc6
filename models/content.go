package models

import "time"

// Announcement represents the announcements table (news items on the public
// site). Bilingual fields; the Arabic side is optional.
type Announcement struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	TitleEn     string    `gorm:"column:title_en;size:500" json:"title_en"`
	TitleAr     *string   `gorm:"column:title_ar;size:500" json:"title_ar,omitempty"`
	ContentEn   string    `gorm:"column:content_en;type:text" json:"content_en"`
	ContentAr   *string   `gorm:"column:content_ar;type:text" json:"content_ar,omitempty"`
	Type        string    `gorm:"column:type;size:50;default:news" json:"type"`
	IsPublished bool      `gorm:"column:is_published;default:true" json:"is_published"`
	ImagePath   *string   `gorm:"column:image_path;size:500" json:"image_path,omitempty"`
	PublishedAt time.Time `gorm:"column:published_at" json:"published_at"`
	CreatedBy   int       `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// GalleryImage represents the gallery table. New uploads are appended at
// max(sort_order)+1.
type GalleryImage struct {
	ID         int       `gorm:"primaryKey;column:id" json:"id"`
	ImagePath  string    `gorm:"column:image_path;size:500" json:"image_path"`
	CaptionEn  *string   `gorm:"column:caption_en;size:500" json:"caption_en,omitempty"`
	CaptionAr  *string   `gorm:"column:caption_ar;size:500" json:"caption_ar,omitempty"`
	Category   string    `gorm:"column:category;size:100;default:general" json:"category"`
	SortOrder  int       `gorm:"column:sort_order;default:0" json:"sort_order"`
	IsVisible  bool      `gorm:"column:is_visible;default:true" json:"is_visible"`
	UploadedBy int       `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`

	Uploader User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

type Committee struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	NameEn    string    `gorm:"column:name_en;size:255" json:"name_en"`
	NameAr    string    `gorm:"column:name_ar;size:255" json:"name_ar"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Members []CommitteeMember `gorm:"foreignKey:CommitteeID;constraint:OnDelete:CASCADE" json:"members"`
}

type CommitteeMember struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	CommitteeID int       `gorm:"column:committee_id" json:"committee_id"`
	NameEn      string    `gorm:"column:name_en;size:255" json:"name_en"`
	NameAr      string    `gorm:"column:name_ar;size:255" json:"name_ar"`
	RoleEn      *string   `gorm:"column:role_en;size:255" json:"role_en,omitempty"`
	RoleAr      *string   `gorm:"column:role_ar;size:255" json:"role_ar,omitempty"`
	ImagePath   *string   `gorm:"column:image_path;size:255" json:"image_path,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

type Speaker struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	NameEn      string    `gorm:"column:name_en;size:255" json:"name_en"`
	NameAr      string    `gorm:"column:name_ar;size:255" json:"name_ar"`
	RoleEn      *string   `gorm:"column:role_en;size:255" json:"role_en,omitempty"`
	RoleAr      *string   `gorm:"column:role_ar;size:255" json:"role_ar,omitempty"`
	BioEn       *string   `gorm:"column:bio_en;type:text" json:"bio_en,omitempty"`
	BioAr       *string   `gorm:"column:bio_ar;type:text" json:"bio_ar,omitempty"`
	ImagePath   *string   `gorm:"column:image_path;size:255" json:"image_path,omitempty"`
	SpeakerType string    `gorm:"column:speaker_type;size:50;default:Keynote" json:"speaker_type"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// Setting is a key/value row of event configuration (dates, deadlines,
// contact email, submissions_open).
type Setting struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	Key         string    `gorm:"column:key;size:100;unique" json:"key"`
	Value       string    `gorm:"column:value;type:text" json:"value"`
	Description *string   `gorm:"column:description;size:255" json:"description,omitempty"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

type ContactMessage struct {
	ID        int        `gorm:"primaryKey;column:id" json:"id"`
	Name      string     `gorm:"column:name;size:255" json:"name"`
	Email     string     `gorm:"column:email;size:255" json:"email"`
	Subject   *string    `gorm:"column:subject;size:500" json:"subject,omitempty"`
	Message   string     `gorm:"column:message;type:text" json:"message"`
	IsRead    bool       `gorm:"column:is_read;default:false;index" json:"is_read"`
	RepliedAt *time.Time `gorm:"column:replied_at" json:"replied_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func (GalleryImage) TableName() string {
	return "gallery"
}

func (Committee) TableName() string {
	return "committees"
}

func (CommitteeMember) TableName() string {
	return "committee_members"
}

func (Speaker) TableName() string {
	return "speakers"
}

func (Setting) TableName() string {
	return "settings"
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
