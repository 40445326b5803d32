package main

import "stockfolio/models"

// sampleStocks is the static catalog loaded by the seeder.
var sampleStocks = []models.Stock{
	{
		Symbol: "RELIANCE", Name: "Reliance Industries Ltd",
		Price: 2450.50, Change: 45.30, ChangePercent: 1.88,
		MarketCap: "₹16.58L Cr", Sector: "Oil & Gas", PE: 24.5,
		Logo: "https://logo.clearbit.com/ril.com", Volume: 2500000,
		High52W: 2856.15, Low52W: 2220.30, Dividend: 8.0, EPS: 99.85, BookValue: 1456.20,
	},
	{
		Symbol: "TCS", Name: "Tata Consultancy Services",
		Price: 3650.75, Change: -25.80, ChangePercent: -0.70,
		MarketCap: "₹13.32L Cr", Sector: "IT Services", PE: 28.3,
		Logo: "https://logo.clearbit.com/tcs.com", Volume: 1800000,
		High52W: 4043.90, Low52W: 3056.65, Dividend: 22.0, EPS: 129.05, BookValue: 456.80,
	},
	{
		Symbol: "INFY", Name: "Infosys Limited",
		Price: 1420.30, Change: 18.45, ChangePercent: 1.32,
		MarketCap: "₹5.89L Cr", Sector: "IT Services", PE: 25.8,
		Logo: "https://logo.clearbit.com/infosys.com", Volume: 3200000,
		High52W: 1729.05, Low52W: 1234.50, Dividend: 17.0, EPS: 55.12, BookValue: 312.45,
	},
	{
		Symbol: "HDFC", Name: "HDFC Bank Limited",
		Price: 1580.90, Change: 12.60, ChangePercent: 0.80,
		MarketCap: "₹8.75L Cr", Sector: "Banking", PE: 18.5,
		Logo: "https://logo.clearbit.com/hdfcbank.com", Volume: 2100000,
		High52W: 1725.00, Low52W: 1363.55, Dividend: 19.0, EPS: 85.40, BookValue: 456.78,
	},
	{
		Symbol: "ICICIBANK", Name: "ICICI Bank Limited",
		Price: 945.25, Change: -8.75, ChangePercent: -0.92,
		MarketCap: "₹6.58L Cr", Sector: "Banking", PE: 16.2,
		Logo: "https://logo.clearbit.com/icicibank.com", Volume: 4500000,
		High52W: 1036.40, Low52W: 756.25, Dividend: 5.0, EPS: 58.35, BookValue: 234.56,
	},
	{
		Symbol: "BHARTIARTL", Name: "Bharti Airtel Limited",
		Price: 865.40, Change: 22.15, ChangePercent: 2.63,
		MarketCap: "₹4.89L Cr", Sector: "Telecom", PE: 32.1,
		Logo: "https://logo.clearbit.com/airtel.in", Volume: 1900000,
		High52W: 938.40, Low52W: 695.50, Dividend: 2.75, EPS: 26.95, BookValue: 156.78,
	},
	{
		Symbol: "ITC", Name: "ITC Limited",
		Price: 425.80, Change: 5.30, ChangePercent: 1.26,
		MarketCap: "₹5.28L Cr", Sector: "FMCG", PE: 22.8,
		Logo: "https://logo.clearbit.com/itcportal.com", Volume: 3800000,
		High52W: 462.35, Low52W: 385.60, Dividend: 10.75, EPS: 18.65, BookValue: 189.45,
	},
	{
		Symbol: "HCLTECH", Name: "HCL Technologies Limited",
		Price: 1245.60, Change: -15.40, ChangePercent: -1.22,
		MarketCap: "₹3.38L Cr", Sector: "IT Services", PE: 21.5,
		Logo: "https://logo.clearbit.com/hcltech.com", Volume: 1600000,
		High52W: 1356.90, Low52W: 1055.25, Dividend: 18.0, EPS: 57.85, BookValue: 245.67,
	},
	{
		Symbol: "WIPRO", Name: "Wipro Limited",
		Price: 485.25, Change: 8.90, ChangePercent: 1.87,
		MarketCap: "₹2.65L Cr", Sector: "IT Services", PE: 24.3,
		Logo: "https://logo.clearbit.com/wipro.com", Volume: 2200000,
		High52W: 567.80, Low52W: 385.50, Dividend: 5.0, EPS: 19.95, BookValue: 178.90,
	},
	{
		Symbol: "MARUTI", Name: "Maruti Suzuki India Limited",
		Price: 9850.30, Change: 125.70, ChangePercent: 1.29,
		MarketCap: "₹2.98L Cr", Sector: "Automobile", PE: 28.9,
		Logo: "https://logo.clearbit.com/marutisuzuki.com", Volume: 450000,
		High52W: 11235.00, Low52W: 8756.25, Dividend: 60.0, EPS: 340.85, BookValue: 2456.78,
	},
}
