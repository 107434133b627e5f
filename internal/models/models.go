package models

import (
	"time"
)

const StatusNew = "NEW"

// Order owns its items: the FK cascades on delete and on primary-key
// update, so an OrderItem never outlives its Order.
type Order struct {
	OrderID       uint        `gorm:"column:order_id;primaryKey"              json:"order_id"`
	CustomerEmail string      `gorm:"column:customer_email;size:64;not null"  json:"customer_email"`
	Status        string      `gorm:"column:status;size:10;not null"          json:"status"`
	Created       time.Time   `gorm:"column:created;not null"                 json:"created"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items"`
}

func (Order) TableName() string { return "order" }

type OrderItem struct {
	ItemID   uint `gorm:"column:item_id;primaryKey"       json:"item_id"`
	OrderID  uint `gorm:"column:order_id;index;not null"  json:"order_id"`
	GameID   int  `gorm:"column:game_id;not null"         json:"game_id"`
	Quantity int  `gorm:"column:quantity;not null"        json:"quantity"`
}

func (OrderItem) TableName() string { return "order_item" }
