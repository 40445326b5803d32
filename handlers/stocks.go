package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stockfolio/config"
	"stockfolio/market"
	"stockfolio/models"
)

const (
	quoteCacheTTL = 5 * time.Minute
	chartCacheTTL = 24 * time.Hour
)

// ListStocks handles GET /api/stocks with search, sector, price range,
// sorting and pagination.
func ListStocks(c *gin.Context) {
	search := c.Query("search")
	sector := c.Query("sector")
	sortBy := c.DefaultQuery("sortBy", "name")
	order := c.DefaultQuery("order", "asc")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := config.DB.Model(&models.Stock{})

	if search != "" {
		pat := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(symbol) LIKE ?", pat, pat)
	}
	if sector != "" && sector != "All" {
		query = query.Where("sector = ?", sector)
	}
	if min := c.Query("minPrice"); min != "" {
		if v, err := strconv.ParseFloat(min, 64); err == nil {
			query = query.Where("price >= ?", v)
		}
	}
	if max := c.Query("maxPrice"); max != "" {
		if v, err := strconv.ParseFloat(max, 64); err == nil {
			query = query.Where("price <= ?", v)
		}
	}

	column := map[string]string{
		"name":   "name",
		"price":  "price",
		"change": "change_percent",
		"volume": "volume",
		"pe":     "pe",
	}[sortBy]
	if column == "" {
		column = "name"
	}
	direction := "ASC"
	if order == "desc" {
		direction = "DESC"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}

	var stocks []models.Stock
	if err := query.Order(column + " " + direction).
		Offset((page - 1) * limit).Limit(limit).
		Find(&stocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"stocks": stocks,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetStock returns one stock with its 52-week range computed from the
// stored daily bars.
func GetStock(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	var stock models.Stock
	if err := config.DB.Where("symbol = ?", symbol).First(&stock).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	oneYearAgo := time.Now().AddDate(-1, 0, 0)
	row := config.DB.Model(&models.MarketData{}).
		Select("MAX(high), MIN(low)").
		Where("symbol = ? AND date >= ?", symbol, oneYearAgo).
		Row()
	var high, low *float64
	if err := row.Scan(&high, &low); err == nil && high != nil && low != nil {
		stock.High52W = *high
		stock.Low52W = *low
	}

	c.JSON(http.StatusOK, stock)
}

// SearchStocks handles GET /api/stocks/search/:query.
func SearchStocks(c *gin.Context) {
	raw := c.Param("query")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	pat := "%" + strings.ToLower(raw) + "%"
	var stocks []models.Stock
	if err := config.DB.
		Where("LOWER(name) LIKE ? OR LOWER(symbol) LIKE ?", pat, pat).
		Order("name").Limit(limit).
		Find(&stocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search stocks"})
		return
	}

	c.JSON(http.StatusOK, stocks)
}

// ChartPoint is one bar in the shape the chart endpoints return.
type ChartPoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
}

// GetChart returns daily bars for a period, Redis-cached.
func GetChart(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	period := c.DefaultQuery("period", "1M")

	cacheKey := fmt.Sprintf("stock:%s:chart:%s", symbol, period)
	if cached, err := config.Rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
		var points []ChartPoint
		if json.Unmarshal([]byte(cached), &points) == nil {
			c.JSON(http.StatusOK, points)
			return
		}
	}

	days := map[string]int{
		"1D": 1, "1W": 7, "1M": 30, "3M": 90, "6M": 180, "1Y": 365,
	}[period]
	if days == 0 {
		days = 30
	}

	startDate := time.Now().AddDate(0, 0, -days)
	var bars []models.MarketData
	if err := config.DB.
		Where("symbol = ? AND date >= ?", symbol, startDate).
		Order("date").
		Find(&bars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chart data"})
		return
	}
	if len(bars) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chart data not found"})
		return
	}

	points := make([]ChartPoint, 0, len(bars))
	for _, b := range bars {
		points = append(points, ChartPoint{
			Date:   b.Date.Format("2006-01-02"),
			Price:  b.Close,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Volume: b.Volume,
		})
	}

	if data, err := json.Marshal(points); err == nil {
		config.Rdb.Set(c.Request.Context(), cacheKey, data, chartCacheTTL)
	}

	c.JSON(http.StatusOK, points)
}

// GetHistory returns close/change/volume rows for the last N days.
func GetHistory(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365*2 {
		days = 30
	}

	startDate := time.Now().AddDate(0, 0, -days)
	var bars []models.MarketData
	if err := config.DB.
		Where("symbol = ? AND date >= ?", symbol, startDate).
		Order("date").
		Find(&bars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch price history"})
		return
	}

	type historyPoint struct {
		Date          string  `json:"date"`
		Price         float64 `json:"price"`
		Change        float64 `json:"change"`
		ChangePercent float64 `json:"change_percent"`
		Volume        int64   `json:"volume"`
	}

	history := make([]historyPoint, 0, len(bars))
	for i, b := range bars {
		p := historyPoint{
			Date:   b.Date.Format("2006-01-02"),
			Price:  b.Close,
			Volume: b.Volume,
		}
		if i > 0 && bars[i-1].Close != 0 {
			p.Change = market.Round2(b.Close - bars[i-1].Close)
			p.ChangePercent = market.Round2(p.Change / bars[i-1].Close * 100)
		}
		history = append(history, p)
	}

	c.JSON(http.StatusOK, history)
}

// GetIndicators computes SMA, VWAP and a simplified RSI over the
// trailing window.
func GetIndicators(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	period, _ := strconv.Atoi(c.DefaultQuery("period", "20"))
	if period < 2 || period > 200 {
		period = 20
	}

	// Extra bars beyond the window for the RSI delta chain.
	var bars []models.MarketData
	if err := config.DB.
		Where("symbol = ?", symbol).
		Order("date DESC").
		Limit(period + 20).
		Find(&bars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch market data"})
		return
	}

	// Oldest first for the window math.
	closes := make([]float64, len(bars))
	volumes := make([]int64, len(bars))
	for i, b := range bars {
		j := len(bars) - 1 - i
		closes[j] = b.Close
		volumes[j] = b.Volume
	}

	indicators, ok := market.Compute(symbol, closes, volumes, period)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Insufficient data for technical indicators"})
		return
	}

	c.JSON(http.StatusOK, indicators)
}

// GetSectors returns the distinct sectors, sorted.
func GetSectors(c *gin.Context) {
	var sectors []string
	if err := config.DB.Model(&models.Stock{}).
		Distinct("sector").
		Order("sector").
		Pluck("sector", &sectors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sectors"})
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// GetQuote returns the latest price for a symbol, cached in Redis.
func GetQuote(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	cacheKey := fmt.Sprintf("stock:%s:price", symbol)

	if cached, err := config.Rdb.Get(c.Request.Context(), cacheKey).Float64(); err == nil {
		c.JSON(http.StatusOK, gin.H{"symbol": symbol, "price": cached})
		return
	}

	var stock models.Stock
	if err := config.DB.Where("symbol = ?", symbol).First(&stock).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		return
	}

	config.Rdb.Set(c.Request.Context(), cacheKey, stock.Price, quoteCacheTTL)
	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "price": stock.Price})
}
