package database

import (
	"fmt"
	"log/slog"

	"diancan/internal/models"

	"gorm.io/gorm"
)

// seedItems is the starter menu inserted into an empty catalog.
var seedItems = []models.Item{
	{ID: "1", Name: "宫保鸡丁", Price: 28, Category: "中式", Description: "经典川菜，鸡肉嫩滑，花生香脆", Image: "https://images.unsplash.com/photo-1603133872878-684f208fb90a?w=300&h=200&fit=crop", Rating: 4.8},
	{ID: "2", Name: "麻婆豆腐", Price: 22, Category: "中式", Description: "四川名菜，麻辣鲜香，嫩滑可口", Image: "https://images.unsplash.com/photo-1596797038530-2c107229f92b?w=300&h=200&fit=crop", Rating: 4.7},
	{ID: "3", Name: "红烧肉", Price: 35, Category: "中式", Description: "传统家常菜，肥瘦相间，入口即化", Image: "https://images.unsplash.com/photo-1551218808-94e220e084d2?w=300&h=200&fit=crop", Rating: 4.9},
	{ID: "4", Name: "黑椒牛排", Price: 68, Category: "西式", Description: "进口牛排配黑椒汁，肉质鲜嫩", Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=300&h=200&fit=crop", Rating: 4.8},
	{ID: "5", Name: "意大利面", Price: 32, Category: "西式", Description: "正宗意式风味，酱汁浓郁", Image: "https://images.unsplash.com/photo-1551183053-bf91a1d81141?w=300&h=200&fit=crop", Rating: 4.5},
	{ID: "6", Name: "寿司拼盘", Price: 48, Category: "日式", Description: "新鲜海鲜寿司，精致美观", Image: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=300&h=200&fit=crop", Rating: 4.7},
	{ID: "7", Name: "拉面", Price: 35, Category: "日式", Description: "浓郁豚骨汤底，配菜丰富", Image: "https://images.unsplash.com/photo-1543351611-58f69d42b146?w=300&h=200&fit=crop", Rating: 4.6},
	{ID: "8", Name: "韩式烤肉", Price: 58, Category: "韩式", Description: "正宗韩式烧烤，肉质鲜美", Image: "https://images.unsplash.com/photo-1526318472351-c75fcf070305?w=300&h=200&fit=crop", Rating: 4.8},
	{ID: "9", Name: "提拉米苏", Price: 32, Category: "甜品", Description: "意式经典甜品，层次丰富", Image: "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=300&h=200&fit=crop", Rating: 4.7},
	{ID: "10", Name: "珍珠奶茶", Price: 18, Category: "饮品", Description: "经典台式风味，珍珠Q弹", Image: "https://images.unsplash.com/photo-1544145945-f90425340c7e?w=300&h=200&fit=crop", Rating: 4.5},
}

// Seed inserts the starter menu when the items table is empty.
// It reports whether any rows were inserted.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count items: %w", err)
	}
	if count > 0 {
		slog.Info("Catalog already populated, skipping seed", "items", count)
		return false, nil
	}

	items := make([]models.Item, len(seedItems))
	copy(items, seedItems)
	if err := db.Create(&items).Error; err != nil {
		return false, fmt.Errorf("failed to seed items: %w", err)
	}
	slog.Info("Seeded starter menu", "items", len(items))
	return true, nil
}
