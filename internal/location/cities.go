package location

import (
	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
)

func city(id, name, region string, lat, lng float64) entity.Place {
	return entity.Place{
		ID:            id,
		Name:          name,
		Description:   name + ", " + region,
		SecondaryText: region,
		Coordinate:    geo.Coordinate{Lat: lat, Lng: lng},
	}
}

var indianCities = []entity.Place{
	city("bangalore", "Bangalore", "Karnataka, India", 12.9716, 77.5946),
	city("mumbai", "Mumbai", "Maharashtra, India", 19.0760, 72.8777),
	city("delhi", "New Delhi", "Delhi, India", 28.6139, 77.2090),
	city("pune", "Pune", "Maharashtra, India", 18.5204, 73.8567),
	city("hyderabad", "Hyderabad", "Telangana, India", 17.3850, 78.4867),
	city("chennai", "Chennai", "Tamil Nadu, India", 13.0827, 80.2707),
	city("kolkata", "Kolkata", "West Bengal, India", 22.5726, 88.3639),
	city("ahmedabad", "Ahmedabad", "Gujarat, India", 23.0225, 72.5714),
	city("jaipur", "Jaipur", "Rajasthan, India", 26.9124, 75.7873),
	city("surat", "Surat", "Gujarat, India", 21.1702, 72.8311),
	city("lucknow", "Lucknow", "Uttar Pradesh, India", 26.8467, 80.9462),
	city("kanpur", "Kanpur", "Uttar Pradesh, India", 26.4499, 80.3319),
	city("nagpur", "Nagpur", "Maharashtra, India", 21.1458, 79.0882),
	city("indore", "Indore", "Madhya Pradesh, India", 22.7196, 75.8577),
	city("thane", "Thane", "Maharashtra, India", 19.2183, 72.9781),
	city("bhopal", "Bhopal", "Madhya Pradesh, India", 23.2599, 77.4126),
	city("visakhapatnam", "Visakhapatnam", "Andhra Pradesh, India", 17.6868, 83.2185),
	city("pimpri", "Pimpri-Chinchwad", "Maharashtra, India", 18.6298, 73.7997),
	city("patna", "Patna", "Bihar, India", 25.5941, 85.1376),
	city("vadodara", "Vadodara", "Gujarat, India", 22.3072, 73.1812),
	city("ghaziabad", "Ghaziabad", "Uttar Pradesh, India", 28.6692, 77.4538),
	city("ludhiana", "Ludhiana", "Punjab, India", 30.9010, 75.8573),
	city("agra", "Agra", "Uttar Pradesh, India", 27.1767, 78.0081),
	city("nashik", "Nashik", "Maharashtra, India", 19.9975, 73.7898),
	city("faridabad", "Faridabad", "Haryana, India", 28.4089, 77.3178),
	city("meerut", "Meerut", "Uttar Pradesh, India", 28.9845, 77.7064),
	city("rajkot", "Rajkot", "Gujarat, India", 22.3039, 70.8022),
	city("kalyan", "Kalyan-Dombivli", "Maharashtra, India", 19.2403, 73.1305),
	city("vasai", "Vasai-Virar", "Maharashtra, India", 19.4034, 72.8205),
	city("varanasi", "Varanasi", "Uttar Pradesh, India", 25.3176, 82.9739),
	city("srinagar", "Srinagar", "Jammu and Kashmir, India", 34.0837, 74.7973),
	city("aurangabad", "Aurangabad", "Maharashtra, India", 19.8762, 75.3433),
	city("dhanbad", "Dhanbad", "Jharkhand, India", 23.7957, 86.4304),
	city("amritsar", "Amritsar", "Punjab, India", 31.6340, 74.8723),
	city("navi_mumbai", "Navi Mumbai", "Maharashtra, India", 19.0330, 73.0297),
	city("allahabad", "Prayagraj", "Uttar Pradesh, India", 25.4358, 81.8463),
	city("howrah", "Howrah", "West Bengal, India", 22.5958, 88.2636),
	city("gwalior", "Gwalior", "Madhya Pradesh, India", 26.2183, 78.1828),
	city("jabalpur", "Jabalpur", "Madhya Pradesh, India", 23.1815, 79.9864),
	city("coimbatore", "Coimbatore", "Tamil Nadu, India", 11.0168, 76.9558),
	city("madurai", "Madurai", "Tamil Nadu, India", 9.9252, 78.1198),
	city("jodhpur", "Jodhpur", "Rajasthan, India", 26.2389, 73.0243),
	city("kota", "Kota", "Rajasthan, India", 25.2138, 75.8648),
	city("guwahati", "Guwahati", "Assam, India", 26.1445, 91.7362),
	city("chandigarh", "Chandigarh", "India", 30.7333, 76.7794),
	city("solapur", "Solapur", "Maharashtra, India", 17.6599, 75.9064),
	city("hubli", "Hubballi-Dharwad", "Karnataka, India", 15.3647, 75.1240),
	city("mysore", "Mysuru", "Karnataka, India", 12.2958, 76.6394),
	city("tiruchirappalli", "Tiruchirappalli", "Tamil Nadu, India", 10.7905, 78.7047),
	city("salem", "Salem", "Tamil Nadu, India", 11.6643, 78.1460),
	city("mira_bhayandar", "Mira-Bhayandar", "Maharashtra, India", 19.2952, 72.8544),
	city("warangal", "Warangal", "Telangana, India", 17.9689, 79.6000),
	city("thiruvananthapuram", "Thiruvananthapuram", "Kerala, India", 8.5241, 76.9366),
	city("guntur", "Guntur", "Andhra Pradesh, India", 16.3067, 80.4365),
	city("bhiwandi", "Bhiwandi", "Maharashtra, India", 19.2812, 73.0482),
	city("saharanpur", "Saharanpur", "Uttar Pradesh, India", 29.9680, 77.5552),
	city("gorakhpur", "Gorakhpur", "Uttar Pradesh, India", 26.7606, 83.3732),
	city("bikaner", "Bikaner", "Rajasthan, India", 28.0229, 73.3119),
	city("amravati", "Amravati", "Maharashtra, India", 20.9374, 77.7796),
	city("noida", "Noida", "Uttar Pradesh, India", 28.5355, 77.3910),
	city("jamshedpur", "Jamshedpur", "Jharkhand, India", 22.8046, 86.2029),
	city("bhilai", "Bhilai", "Chhattisgarh, India", 21.1938, 81.3509),
	city("cuttack", "Cuttack", "Odisha, India", 20.4625, 85.8828),
	city("firozabad", "Firozabad", "Uttar Pradesh, India", 27.1592, 78.3957),
	city("kochi", "Kochi", "Kerala, India", 9.9312, 76.2673),
	city("nellore", "Nellore", "Andhra Pradesh, India", 14.4426, 79.9865),
	city("bhavnagar", "Bhavnagar", "Gujarat, India", 21.7645, 72.1519),
	city("dehradun", "Dehradun", "Uttarakhand, India", 30.3165, 78.0322),
	city("durgapur", "Durgapur", "West Bengal, India", 23.5204, 87.3119),
	city("asansol", "Asansol", "West Bengal, India", 23.6839, 86.9523),
	city("rourkela", "Rourkela", "Odisha, India", 22.2604, 84.8536),
	city("nanded", "Nanded", "Maharashtra, India", 19.1383, 77.3210),
	city("kolhapur", "Kolhapur", "Maharashtra, India", 16.7050, 74.2433),
	city("ajmer", "Ajmer", "Rajasthan, India", 26.4499, 74.6399),
	city("akola", "Akola", "Maharashtra, India", 20.7002, 77.0082),
	city("gulbarga", "Kalaburagi", "Karnataka, India", 17.3297, 76.8343),
	city("jamnagar", "Jamnagar", "Gujarat, India", 22.4707, 70.0577),
	city("ujjain", "Ujjain", "Madhya Pradesh, India", 23.1765, 75.7885),
	city("loni", "Loni", "Uttar Pradesh, India", 28.7500, 77.2833),
	city("siliguri", "Siliguri", "West Bengal, India", 26.7271, 88.3953),
	city("jhansi", "Jhansi", "Uttar Pradesh, India", 25.4484, 78.5685),
	city("ulhasnagar", "Ulhasnagar", "Maharashtra, India", 19.2215, 73.1645),
	city("jammu", "Jammu", "Jammu and Kashmir, India", 32.7266, 74.8570),
	city("sangli", "Sangli-Miraj & Kupwad", "Maharashtra, India", 16.8524, 74.5815),
	city("mangalore", "Mangaluru", "Karnataka, India", 12.9141, 74.8560),
	city("erode", "Erode", "Tamil Nadu, India", 11.3410, 77.7172),
	city("belgaum", "Belagavi", "Karnataka, India", 15.8497, 74.4977),
	city("ambattur", "Ambattur", "Tamil Nadu, India", 13.1185, 80.1574),
	city("tirunelveli", "Tirunelveli", "Tamil Nadu, India", 8.7139, 77.7567),
	city("malegaon", "Malegaon", "Maharashtra, India", 20.5579, 74.5287),
	city("gaya", "Gaya", "Bihar, India", 24.7914, 85.0002),
	city("jalgaon", "Jalgaon", "Maharashtra, India", 21.0077, 75.5626),
	city("udaipur", "Udaipur", "Rajasthan, India", 24.5854, 73.7125),
	city("maheshtala", "Maheshtala", "West Bengal, India", 22.5050, 88.2475),
}
