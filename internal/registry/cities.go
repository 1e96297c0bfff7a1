package registry

import "github.com/dikshithreddym/Earth-s-Pulse/internal/model"

// cities is the curated list of world cities the mood map covers, one
// entry per city with approximate coordinates.
var cities = []model.City{
	{Name: "New York, USA", Lat: 40.7128, Lng: -74.0060, Region: "North America"},
	{Name: "Los Angeles, USA", Lat: 34.0522, Lng: -118.2437, Region: "North America"},
	{Name: "Chicago, USA", Lat: 41.8781, Lng: -87.6298, Region: "North America"},
	{Name: "Houston, USA", Lat: 29.7604, Lng: -95.3698, Region: "North America"},
	{Name: "Phoenix, USA", Lat: 33.4484, Lng: -112.0740, Region: "North America"},
	{Name: "Philadelphia, USA", Lat: 39.9526, Lng: -75.1652, Region: "North America"},
	{Name: "San Antonio, USA", Lat: 29.4241, Lng: -98.4936, Region: "North America"},
	{Name: "San Diego, USA", Lat: 32.7157, Lng: -117.1611, Region: "North America"},
	{Name: "Dallas, USA", Lat: 32.7767, Lng: -96.7970, Region: "North America"},
	{Name: "San Jose, USA", Lat: 37.3382, Lng: -121.8863, Region: "North America"},
	{Name: "Toronto, Canada", Lat: 43.6532, Lng: -79.3832, Region: "North America"},
	{Name: "Montreal, Canada", Lat: 45.5017, Lng: -73.5673, Region: "North America"},
	{Name: "Vancouver, Canada", Lat: 49.2827, Lng: -123.1207, Region: "North America"},
	{Name: "Mexico City, Mexico", Lat: 19.4326, Lng: -99.1332, Region: "North America"},
	{Name: "Guadalajara, Mexico", Lat: 20.6597, Lng: -103.3496, Region: "North America"},
	{Name: "Buenos Aires, Argentina", Lat: -34.6037, Lng: -58.3816, Region: "South America"},
	{Name: "São Paulo, Brazil", Lat: -23.5505, Lng: -46.6333, Region: "South America"},
	{Name: "Rio de Janeiro, Brazil", Lat: -22.9068, Lng: -43.1729, Region: "South America"},
	{Name: "Lima, Peru", Lat: -12.0464, Lng: -77.0428, Region: "South America"},
	{Name: "Santiago, Chile", Lat: -33.4489, Lng: -70.6693, Region: "South America"},
	{Name: "Bogotá, Colombia", Lat: 4.7110, Lng: -74.0721, Region: "South America"},
	{Name: "Caracas, Venezuela", Lat: 10.4806, Lng: -66.9036, Region: "South America"},
	{Name: "Panama City, Panama", Lat: 8.9824, Lng: -79.5199, Region: "North America"},
	{Name: "Quito, Ecuador", Lat: -0.1807, Lng: -78.4678, Region: "South America"},
	{Name: "Callao/Lima Port, Peru", Lat: -12.0433, Lng: -77.0283, Region: "South America"},
	{Name: "Dubai, UAE", Lat: 25.2048, Lng: 55.2708, Region: "Middle East"},
	{Name: "Riyadh, Saudi Arabia", Lat: 24.7136, Lng: 46.6753, Region: "Middle East"},
	{Name: "Istanbul, Turkey", Lat: 41.0082, Lng: 28.9784, Region: "Middle East"},
	{Name: "London, UK", Lat: 51.5074, Lng: -0.1278, Region: "Europe"},
	{Name: "Paris, France", Lat: 48.8566, Lng: 2.3522, Region: "Europe"},
	{Name: "Berlin, Germany", Lat: 52.5200, Lng: 13.4050, Region: "Europe"},
	{Name: "Rome, Italy", Lat: 41.9028, Lng: 12.4964, Region: "Europe"},
	{Name: "Madrid, Spain", Lat: 40.4168, Lng: -3.7038, Region: "Europe"},
	{Name: "Moscow, Russia", Lat: 55.7558, Lng: 37.6173, Region: "Europe"},
	{Name: "Saint Petersburg, Russia", Lat: 59.9343, Lng: 30.3351, Region: "Europe"},
	{Name: "Prague, Czechia", Lat: 50.0755, Lng: 14.4378, Region: "Europe"},
	{Name: "Vienna, Austria", Lat: 48.2082, Lng: 16.3738, Region: "Europe"},
	{Name: "Budapest, Hungary", Lat: 47.4979, Lng: 19.0402, Region: "Europe"},
	{Name: "Helsinki, Finland", Lat: 60.1699, Lng: 24.9384, Region: "Europe"},
	{Name: "Stockholm, Sweden", Lat: 59.3293, Lng: 18.0686, Region: "Europe"},
	{Name: "Oslo, Norway", Lat: 59.9139, Lng: 10.7522, Region: "Europe"},
	{Name: "Copenhagen, Denmark", Lat: 55.6761, Lng: 12.5683, Region: "Europe"},
	{Name: "Reykjavik, Iceland", Lat: 64.1466, Lng: -21.9426, Region: "Europe"},
	{Name: "Tokyo, Japan", Lat: 35.6895, Lng: 139.6917, Region: "Asia"},
	{Name: "Osaka, Japan", Lat: 34.6937, Lng: 135.5023, Region: "Asia"},
	{Name: "Seoul, South Korea", Lat: 37.5665, Lng: 126.9780, Region: "Asia"},
	{Name: "Shanghai, China", Lat: 31.2304, Lng: 121.4737, Region: "Asia"},
	{Name: "Beijing, China", Lat: 39.9042, Lng: 116.4074, Region: "Asia"},
	{Name: "Hong Kong", Lat: 22.3964, Lng: 114.1095, Region: "Asia"},
	{Name: "Singapore", Lat: 1.3521, Lng: 103.8198, Region: "Asia"},
	{Name: "Bangkok, Thailand", Lat: 13.7563, Lng: 100.5018, Region: "Asia"},
	{Name: "Kuala Lumpur, Malaysia", Lat: 3.1390, Lng: 101.6869, Region: "Asia"},
	{Name: "Jakarta, Indonesia", Lat: -6.2088, Lng: 106.8456, Region: "Asia"},
	{Name: "Manila, Philippines", Lat: 14.5995, Lng: 120.9842, Region: "Asia"},
	{Name: "Hanoi, Vietnam", Lat: 21.0278, Lng: 105.8342, Region: "Asia"},
	{Name: "Ho Chi Minh City, Vietnam", Lat: 10.8231, Lng: 106.6297, Region: "Asia"},
	{Name: "Delhi, India", Lat: 28.7041, Lng: 77.1025, Region: "Asia"},
	{Name: "Mumbai, India", Lat: 19.0760, Lng: 72.8777, Region: "Asia"},
	{Name: "Bengaluru, India", Lat: 12.9716, Lng: 77.5946, Region: "Asia"},
	{Name: "Chennai, India", Lat: 13.0827, Lng: 80.2707, Region: "Asia"},
	{Name: "Dhaka, Bangladesh", Lat: 23.8103, Lng: 90.4125, Region: "Asia"},
	{Name: "Karachi, Pakistan", Lat: 24.8607, Lng: 67.0011, Region: "Asia"},
	{Name: "Islamabad, Pakistan", Lat: 33.6844, Lng: 73.0479, Region: "Asia"},
	{Name: "Lahore, Pakistan", Lat: 31.5204, Lng: 74.3587, Region: "Asia"},
	{Name: "Kathmandu, Nepal", Lat: 27.7172, Lng: 85.3240, Region: "Asia"},
	{Name: "Colombo, Sri Lanka", Lat: 6.9271, Lng: 79.8612, Region: "Asia"},
	{Name: "Tel Aviv, Israel", Lat: 32.0853, Lng: 34.7818, Region: "Middle East"},
	{Name: "Jerusalem, Israel", Lat: 31.7683, Lng: 35.2137, Region: "Middle East"},
	{Name: "Cairo, Egypt", Lat: 30.0444, Lng: 31.2357, Region: "Africa"},
	{Name: "Nairobi, Kenya", Lat: -1.2864, Lng: 36.8172, Region: "Africa"},
	{Name: "Johannesburg, South Africa", Lat: -26.2041, Lng: 28.0473, Region: "Africa"},
	{Name: "Cape Town, South Africa", Lat: -33.9249, Lng: 18.4241, Region: "Africa"},
	{Name: "Lagos, Nigeria", Lat: 6.5244, Lng: 3.3792, Region: "Africa"},
	{Name: "Accra, Ghana", Lat: 5.6037, Lng: -0.1870, Region: "Africa"},
	{Name: "Casablanca, Morocco", Lat: 33.5731, Lng: -7.5898, Region: "Africa"},
	{Name: "Algiers, Algeria", Lat: 36.7538, Lng: 3.0588, Region: "Africa"},
	{Name: "Tunis, Tunisia", Lat: 36.8065, Lng: 10.1815, Region: "Africa"},
	{Name: "Addis Ababa, Ethiopia", Lat: 9.0054, Lng: 38.7636, Region: "Africa"},
	{Name: "Kampala, Uganda", Lat: 0.3476, Lng: 32.5825, Region: "Africa"},
	{Name: "Dar es Salaam, Tanzania", Lat: -6.7924, Lng: 39.2083, Region: "Africa"},
	{Name: "Melbourne, Australia", Lat: -37.8136, Lng: 144.9631, Region: "Oceania"},
	{Name: "Sydney, Australia", Lat: -33.8688, Lng: 151.2093, Region: "Oceania"},
	{Name: "Brisbane, Australia", Lat: -27.4698, Lng: 153.0251, Region: "Oceania"},
	{Name: "Perth, Australia", Lat: -31.9523, Lng: 115.8613, Region: "Oceania"},
	{Name: "Auckland, New Zealand", Lat: -36.8485, Lng: 174.7633, Region: "Oceania"},
	{Name: "Wellington, New Zealand", Lat: -41.2865, Lng: 174.7762, Region: "Oceania"},
	{Name: "Barcelona, Spain", Lat: 41.3851, Lng: 2.1734, Region: "Europe"},
	{Name: "Amsterdam, Netherlands", Lat: 52.3676, Lng: 4.9041, Region: "Europe"},
	{Name: "Frankfurt, Germany", Lat: 50.1109, Lng: 8.6821, Region: "Europe"},
	{Name: "Hamburg, Germany", Lat: 53.5511, Lng: 9.9937, Region: "Europe"},
	{Name: "Valencia, Spain", Lat: 39.4699, Lng: -0.3763, Region: "Europe"},
	{Name: "Glasgow, UK", Lat: 55.8642, Lng: -4.2518, Region: "Europe"},
	{Name: "Edinburgh, UK", Lat: 55.9533, Lng: -3.1883, Region: "Europe"},
	{Name: "Porto, Portugal", Lat: 41.1579, Lng: -8.6291, Region: "Europe"},
	{Name: "Zagreb, Croatia", Lat: 45.8150, Lng: 15.9819, Region: "Europe"},
	{Name: "Sofia, Bulgaria", Lat: 42.6977, Lng: 23.3219, Region: "Europe"},
	{Name: "Belgrade, Serbia", Lat: 44.7866, Lng: 20.4489, Region: "Europe"},
	{Name: "Sarajevo, Bosnia & Herzegovina", Lat: 43.8563, Lng: 18.4131, Region: "Europe"},
	{Name: "Tallinn, Estonia", Lat: 59.4370, Lng: 24.7536, Region: "Europe"},
	{Name: "Vilnius, Lithuania", Lat: 54.6872, Lng: 25.2797, Region: "Europe"},}
