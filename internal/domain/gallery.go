package domain

import (
	"strings"
	"time"
)

// OwnerKind - тип сущности, к которой привязаны элементы галереи
type OwnerKind string

const (
	OwnerResidentialComplex OwnerKind = "residential_complex"
	OwnerSecondaryProperty  OwnerKind = "secondary_property"
	OwnerEmployee           OwnerKind = "employee"
	OwnerArticle            OwnerKind = "article"
	OwnerSpecialOffer       OwnerKind = "special_offer"
	OwnerOffice             OwnerKind = "office"
	OwnerCompany            OwnerKind = "company"
	OwnerEmployeeVideo      OwnerKind = "employee_video"
	OwnerResidentialVideo   OwnerKind = "residential_video"
	OwnerSecondaryVideo     OwnerKind = "secondary_video"
)

var ownerKinds = []OwnerKind{
	OwnerResidentialComplex,
	OwnerSecondaryProperty,
	OwnerEmployee,
	OwnerArticle,
	OwnerSpecialOffer,
	OwnerOffice,
	OwnerCompany,
	OwnerEmployeeVideo,
	OwnerResidentialVideo,
	OwnerSecondaryVideo,
}

// OwnerKinds возвращает все поддерживаемые типы владельцев
func OwnerKinds() []OwnerKind {
	out := make([]OwnerKind, len(ownerKinds))
	copy(out, ownerKinds)
	return out
}

func ParseOwnerKind(s string) (OwnerKind, bool) {
	s = strings.TrimSpace(s)
	for _, k := range ownerKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// OwnerRef - ссылка на владельца: тип + идентификатор в его таблице
type OwnerRef struct {
	Kind OwnerKind `json:"kind"`
	ID   int64     `json:"id"`
}

// Owner - владелец галереи с разрешённым именем
type Owner struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ContentKind - вид элемента галереи
type ContentKind string

const (
	ContentImage ContentKind = "image"
	ContentVideo ContentKind = "video"
)

func ParseContentKind(s string) (ContentKind, bool) {
	switch ContentKind(strings.TrimSpace(s)) {
	case ContentImage:
		return ContentImage, true
	case ContentVideo:
		return ContentVideo, true
	}
	return "", false
}

const MaxGalleryTitleLength = 200

// GalleryItem - элемент галереи (изображение или видео)
type GalleryItem struct {
	ID             int64       `json:"id" db:"id"`
	OwnerKind      OwnerKind   `json:"owner_kind" db:"owner_kind"`
	OwnerID        int64       `json:"owner_id" db:"owner_id"`
	Kind           ContentKind `json:"kind" db:"kind"`
	Title          string      `json:"title" db:"title"`
	Description    string      `json:"description" db:"description"`
	ImagePath      string      `json:"image_path" db:"image_path"`
	VideoURL       string      `json:"video_url" db:"video_url"`
	VideoThumbnail string      `json:"video_thumbnail" db:"video_thumbnail"`
	Order          int         `json:"order" db:"sort_order"`
	IsMain         bool        `json:"is_main" db:"is_main"`
	IsActive       bool        `json:"is_active" db:"is_active"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
}

func (g *GalleryItem) Owner() OwnerRef {
	return OwnerRef{Kind: g.OwnerKind, ID: g.OwnerID}
}

// GalleryPatch - разрешённые к изменению поля; nil означает "не менять"
type GalleryPatch struct {
	Title       *string
	Description *string
	VideoURL    *string
	IsMain      *bool
}

func (p GalleryPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.VideoURL == nil && p.IsMain == nil
}

// GalleryFilter - выборка элементов одного владельца; пустой Kind означает все виды
type GalleryFilter struct {
	Owner OwnerRef
	Kind  ContentKind
}
