package ward

// DefaultWards returns the built-in ward table for Delhi, covering the 250
// municipal wards grouped into their 12 administrative zones. Coordinates are
// approximated ward centroids; a GeoJSON boundary file would replace this
// in a full deployment.
func DefaultWards() []Ward {
	return []Ward{
		{ID: 1, Name: "Narela", Zone: "Narela", Lat: 28.8517, Lon: 77.0927},
		{ID: 2, Name: "Bankner", Zone: "Narela", Lat: 28.8420, Lon: 77.0700},
		{ID: 3, Name: "Holambi Kalan", Zone: "Narela", Lat: 28.8180, Lon: 77.0650},
		{ID: 4, Name: "Alipur", Zone: "Narela", Lat: 28.7950, Lon: 77.1350},
		{ID: 5, Name: "Bakhtawarpur", Zone: "Narela", Lat: 28.8050, Lon: 77.1100},
		{ID: 6, Name: "Burari", Zone: "Civil Line", Lat: 28.7560, Lon: 77.1950},
		{ID: 7, Name: "Kadipur", Zone: "Civil Line", Lat: 28.7650, Lon: 77.1800},
		{ID: 8, Name: "Mukundpur", Zone: "Civil Line", Lat: 28.7500, Lon: 77.1700},
		{ID: 9, Name: "Sant Nagar", Zone: "Civil Line", Lat: 28.7450, Lon: 77.1850},
		{ID: 10, Name: "Jharoda", Zone: "Civil Line", Lat: 28.7300, Lon: 77.1900},
		{ID: 11, Name: "Timarpur", Zone: "Civil Line", Lat: 28.7100, Lon: 77.2150},
		{ID: 12, Name: "Malka Ganj", Zone: "Civil Line", Lat: 28.6780, Lon: 77.2050},
		{ID: 13, Name: "Mukherjee Nagar", Zone: "Civil Line", Lat: 28.7150, Lon: 77.1950},
		{ID: 14, Name: "Dhirpur", Zone: "Civil Line", Lat: 28.7200, Lon: 77.2000},
		{ID: 15, Name: "Adarsh Nagar", Zone: "Civil Line", Lat: 28.7120, Lon: 77.1750},
		{ID: 16, Name: "Azadpur", Zone: "Civil Line", Lat: 28.7050, Lon: 77.1800},
		{ID: 17, Name: "Bhalswa", Zone: "Civil Line", Lat: 28.7400, Lon: 77.1600},
		{ID: 18, Name: "Jahangir Puri", Zone: "Civil Line", Lat: 28.7350, Lon: 77.1650},
		{ID: 19, Name: "Sarup Nagar", Zone: "Narela", Lat: 28.7500, Lon: 77.1500},
		{ID: 20, Name: "Samaypur Badli", Zone: "Narela", Lat: 28.7600, Lon: 77.1400},
		{ID: 21, Name: "Rohini-A", Zone: "Rohini", Lat: 28.7200, Lon: 77.1000},
		{ID: 22, Name: "Rohini-B", Zone: "Rohini", Lat: 28.7150, Lon: 77.0950},
		{ID: 23, Name: "Rithala", Zone: "Rohini", Lat: 28.7100, Lon: 77.0900},
		{ID: 24, Name: "Vijay Vihar", Zone: "Rohini", Lat: 28.7050, Lon: 77.0850},
		{ID: 25, Name: "Budh Vihar", Zone: "Rohini", Lat: 28.7000, Lon: 77.0800},
		{ID: 26, Name: "Pooth Kalan", Zone: "Rohini", Lat: 28.7050, Lon: 77.0600},
		{ID: 27, Name: "Begumpur", Zone: "Rohini", Lat: 28.7150, Lon: 77.0550},
		{ID: 28, Name: "Shahbaad Dairy", Zone: "Rohini", Lat: 28.7350, Lon: 77.0800},
		{ID: 29, Name: "Pooth Khurd", Zone: "Narela", Lat: 28.7450, Lon: 77.0650},
		{ID: 30, Name: "Bawana", Zone: "Narela", Lat: 28.7900, Lon: 77.0400},
		{ID: 31, Name: "Nangal Thakran", Zone: "Narela", Lat: 28.7950, Lon: 77.0250},
		{ID: 32, Name: "Kanjhawala", Zone: "Narela", Lat: 28.7250, Lon: 77.0050},
		{ID: 33, Name: "Rani Khera", Zone: "Narela", Lat: 28.6900, Lon: 77.0350},
		{ID: 34, Name: "Nangloi", Zone: "West Zone", Lat: 28.6800, Lon: 77.0600},
		{ID: 35, Name: "Mundka", Zone: "West Zone", Lat: 28.6850, Lon: 77.0300},
		{ID: 36, Name: "Nilothi", Zone: "West Zone", Lat: 28.6650, Lon: 77.0500},
		{ID: 37, Name: "Kirari", Zone: "West Zone", Lat: 28.6950, Lon: 77.0550},
		{ID: 38, Name: "Prem Nagar", Zone: "West Zone", Lat: 28.6900, Lon: 77.0450},
		{ID: 39, Name: "Mubarikpur", Zone: "West Zone", Lat: 28.7000, Lon: 77.0550},
		{ID: 40, Name: "Nithari", Zone: "West Zone", Lat: 28.6950, Lon: 77.0650},
		{ID: 41, Name: "Aman Vihar", Zone: "West Zone", Lat: 28.7050, Lon: 77.0700},
		{ID: 42, Name: "Mangol Puri", Zone: "Rohini", Lat: 28.6900, Lon: 77.0850},
		{ID: 43, Name: "Sultanpuri-A", Zone: "Rohini", Lat: 28.6950, Lon: 77.0750},
		{ID: 44, Name: "Sultanpuri-B", Zone: "Rohini", Lat: 28.6920, Lon: 77.0720},
		{ID: 45, Name: "Jawalapuri", Zone: "Rohini", Lat: 28.6750, Lon: 77.0700},
		{ID: 46, Name: "Nangloi Jat", Zone: "Rohini", Lat: 28.6780, Lon: 77.0650},
		{ID: 47, Name: "Nihal Vihar", Zone: "Rohini", Lat: 28.6600, Lon: 77.0600},
		{ID: 48, Name: "Guru Harkishan Nagar", Zone: "Rohini", Lat: 28.6850, Lon: 77.0650},
		{ID: 49, Name: "Mangolpuri-A", Zone: "Rohini", Lat: 28.6880, Lon: 77.0800},
		{ID: 50, Name: "Mangolpuri-B", Zone: "Rohini", Lat: 28.6860, Lon: 77.0820},
		{ID: 51, Name: "Rohini-C", Zone: "Rohini", Lat: 28.7180, Lon: 77.1120},
		{ID: 52, Name: "Rohini-F", Zone: "Rohini", Lat: 28.7250, Lon: 77.1080},
		{ID: 53, Name: "Rohini-E", Zone: "Rohini", Lat: 28.7300, Lon: 77.1150},
		{ID: 54, Name: "Rohini-D", Zone: "Rohini", Lat: 28.7220, Lon: 77.1250},
		{ID: 55, Name: "Shalimar Bagh-A", Zone: "Keshavpuram", Lat: 28.7050, Lon: 77.1550},
		{ID: 56, Name: "Shalimar Bagh-B", Zone: "Keshavpuram", Lat: 28.7020, Lon: 77.1580},
		{ID: 57, Name: "Pitam Pura", Zone: "Keshavpuram", Lat: 28.6980, Lon: 77.1350},
		{ID: 58, Name: "Saraswati Vihar", Zone: "Keshavpuram", Lat: 28.6920, Lon: 77.1300},
		{ID: 59, Name: "Paschim Vihar", Zone: "Keshavpuram", Lat: 28.6700, Lon: 77.1000},
		{ID: 60, Name: "Rani Bagh", Zone: "Keshavpuram", Lat: 28.6800, Lon: 77.1250},
		{ID: 61, Name: "Kohat Enclave", Zone: "Keshavpuram", Lat: 28.6950, Lon: 77.1450},
		{ID: 62, Name: "Shakur Pur", Zone: "Keshavpuram", Lat: 28.6880, Lon: 77.1480},
		{ID: 63, Name: "Tri Nagar", Zone: "Keshavpuram", Lat: 28.6800, Lon: 77.1550},
		{ID: 64, Name: "Keshav Puram", Zone: "Keshavpuram", Lat: 28.6850, Lon: 77.1650},
		{ID: 65, Name: "Ashok Vihar", Zone: "Keshavpuram", Lat: 28.6950, Lon: 77.1750},
		{ID: 66, Name: "Wazir Pur", Zone: "Keshavpuram", Lat: 28.6980, Lon: 77.1700},
		{ID: 67, Name: "Sangam Park", Zone: "Keshavpuram", Lat: 28.6900, Lon: 77.1850},
		{ID: 68, Name: "Model Town", Zone: "Civil Line", Lat: 28.7050, Lon: 77.1950},
		{ID: 69, Name: "Kamla Nagar", Zone: "Civil Line", Lat: 28.6780, Lon: 77.2080},
		{ID: 70, Name: "Shastri Nagar", Zone: "Civil Line", Lat: 28.6650, Lon: 77.1800},
		{ID: 71, Name: "Kishan Ganj", Zone: "City S.P.Zone", Lat: 28.6620, Lon: 77.1950},
		{ID: 72, Name: "Sadar Bazar", Zone: "City S.P.Zone", Lat: 28.6550, Lon: 77.2100},
		{ID: 73, Name: "Civil Lines", Zone: "Civil Line", Lat: 28.6680, Lon: 77.2250},
		{ID: 74, Name: "Chandni Chowk", Zone: "City S.P.Zone", Lat: 28.6550, Lon: 77.2300},
		{ID: 75, Name: "Jama Masjid", Zone: "City S.P.Zone", Lat: 28.6500, Lon: 77.2350},
		{ID: 76, Name: "Chandani Mahal", Zone: "City S.P.Zone", Lat: 28.6420, Lon: 77.2380},
		{ID: 77, Name: "Delhi Gate", Zone: "City S.P.Zone", Lat: 28.6380, Lon: 77.2420},
		{ID: 78, Name: "Bazar Sita Ram", Zone: "City S.P.Zone", Lat: 28.6450, Lon: 77.2280},
		{ID: 79, Name: "Ballimaran", Zone: "City S.P.Zone", Lat: 28.6520, Lon: 77.2220},
		{ID: 80, Name: "Ram Nagar", Zone: "City S.P.Zone", Lat: 28.6480, Lon: 77.2150},
		{ID: 81, Name: "Quraish Nagar", Zone: "City S.P.Zone", Lat: 28.6550, Lon: 77.2050},
		{ID: 82, Name: "Pahar Ganj", Zone: "City S.P.Zone", Lat: 28.6420, Lon: 77.2120},
		{ID: 83, Name: "Karol Bagh", Zone: "Karolbagh", Lat: 28.6500, Lon: 77.1900},
		{ID: 84, Name: "Dev Nagar", Zone: "Karolbagh", Lat: 28.6520, Lon: 77.1850},
		{ID: 85, Name: "West Patel Nagar", Zone: "Karolbagh", Lat: 28.6450, Lon: 77.1600},
		{ID: 86, Name: "East Patel Nagar", Zone: "Karolbagh", Lat: 28.6420, Lon: 77.1680},
		{ID: 87, Name: "Ranjeet Nagar", Zone: "Karolbagh", Lat: 28.6400, Lon: 77.1550},
		{ID: 88, Name: "Baljeet Nagar", Zone: "Karolbagh", Lat: 28.6380, Lon: 77.1500},
		{ID: 89, Name: "Karam Pura", Zone: "Karolbagh", Lat: 28.6550, Lon: 77.1450},
		{ID: 90, Name: "Moti Nagar", Zone: "Karolbagh", Lat: 28.6520, Lon: 77.1350},
		{ID: 91, Name: "Ramesh Nagar", Zone: "Karolbagh", Lat: 28.6450, Lon: 77.1300},
		{ID: 92, Name: "Punjabi Bagh", Zone: "West Zone", Lat: 28.6650, Lon: 77.1250},
		{ID: 93, Name: "Madipur", Zone: "West Zone", Lat: 28.6680, Lon: 77.1100},
		{ID: 94, Name: "Raghubir Nagar", Zone: "West Zone", Lat: 28.6550, Lon: 77.1150},
		{ID: 95, Name: "Vishnu Garden", Zone: "West Zone", Lat: 28.6500, Lon: 77.1050},
		{ID: 96, Name: "Rajouri Garden", Zone: "West Zone", Lat: 28.6450, Lon: 77.1180},
		{ID: 97, Name: "Chaukhandi Nagar", Zone: "West Zone", Lat: 28.6380, Lon: 77.1100},
		{ID: 98, Name: "Subhash Nagar", Zone: "West Zone", Lat: 28.6350, Lon: 77.1050},
		{ID: 99, Name: "Hari Nagar", Zone: "West Zone", Lat: 28.6280, Lon: 77.1000},
		{ID: 100, Name: "Fateh Nagar", Zone: "West Zone", Lat: 28.6250, Lon: 77.0950},
		{ID: 101, Name: "Tilak Nagar", Zone: "West Zone", Lat: 28.6350, Lon: 77.0900},
		{ID: 102, Name: "Khyala", Zone: "West Zone", Lat: 28.6420, Lon: 77.0950},
		{ID: 103, Name: "Keshopur", Zone: "West Zone", Lat: 28.6450, Lon: 77.0850},
		{ID: 104, Name: "Janak Puri South", Zone: "Najafgarh Zone", Lat: 28.6150, Lon: 77.0900},
		{ID: 105, Name: "Mahaveer Enclave", Zone: "Najafgarh Zone", Lat: 28.5950, Lon: 77.0800},
		{ID: 106, Name: "Janak Puri West", Zone: "Najafgarh Zone", Lat: 28.6250, Lon: 77.0800},
		{ID: 107, Name: "Vikas Puri", Zone: "Najafgarh Zone", Lat: 28.6350, Lon: 77.0650},
		{ID: 108, Name: "Hastsal", Zone: "Najafgarh Zone", Lat: 28.6400, Lon: 77.0500},
		{ID: 109, Name: "Vikas Nagar", Zone: "Najafgarh Zone", Lat: 28.6450, Lon: 77.0400},
		{ID: 110, Name: "Kunwar Singh Nagar", Zone: "Najafgarh Zone", Lat: 28.6550, Lon: 77.0450},
		{ID: 111, Name: "Baprola", Zone: "Najafgarh Zone", Lat: 28.6500, Lon: 77.0300},
		{ID: 112, Name: "Sainik Enclave", Zone: "Najafgarh Zone", Lat: 28.6250, Lon: 77.0350},
		{ID: 113, Name: "Mohan Garden", Zone: "Najafgarh Zone", Lat: 28.6200, Lon: 77.0450},
		{ID: 114, Name: "Nawada", Zone: "Najafgarh Zone", Lat: 28.6100, Lon: 77.0400},
		{ID: 115, Name: "Uttam Nagar", Zone: "Najafgarh Zone", Lat: 28.6180, Lon: 77.0550},
		{ID: 116, Name: "Binda Pur", Zone: "Najafgarh Zone", Lat: 28.6050, Lon: 77.0600},
		{ID: 117, Name: "Dabri", Zone: "Najafgarh Zone", Lat: 28.6000, Lon: 77.0700},
		{ID: 118, Name: "Sagarpur", Zone: "Najafgarh Zone", Lat: 28.5900, Lon: 77.0850},
		{ID: 119, Name: "Manglapuri", Zone: "Najafgarh Zone", Lat: 28.5850, Lon: 77.0750},
		{ID: 120, Name: "Dwarka-B", Zone: "Najafgarh Zone", Lat: 28.5700, Lon: 77.0500},
		{ID: 121, Name: "Dwarka-A", Zone: "Najafgarh Zone", Lat: 28.5800, Lon: 77.0600},
		{ID: 122, Name: "Matiala", Zone: "Najafgarh Zone", Lat: 28.6000, Lon: 77.0300},
		{ID: 123, Name: "Kakrola", Zone: "Najafgarh Zone", Lat: 28.6050, Lon: 77.0250},
		{ID: 124, Name: "Nangli Sakrawati", Zone: "Najafgarh Zone", Lat: 28.6150, Lon: 77.0000},
		{ID: 125, Name: "Chhawala", Zone: "Najafgarh Zone", Lat: 28.5750, Lon: 76.9950},
		{ID: 126, Name: "Isapur", Zone: "Najafgarh Zone", Lat: 28.5900, Lon: 76.9200},
		{ID: 127, Name: "Najafgarh", Zone: "Najafgarh Zone", Lat: 28.6100, Lon: 76.9800},
		{ID: 128, Name: "Dichaon Kalan", Zone: "Najafgarh Zone", Lat: 28.6300, Lon: 76.9600},
		{ID: 129, Name: "Roshan Pura", Zone: "Najafgarh Zone", Lat: 28.6200, Lon: 76.9700},
		{ID: 130, Name: "Dwarka-C", Zone: "Najafgarh Zone", Lat: 28.5500, Lon: 77.0600},
		{ID: 131, Name: "Bijwasan", Zone: "Najafgarh Zone", Lat: 28.5250, Lon: 77.0500},
		{ID: 132, Name: "Kapashera", Zone: "Najafgarh Zone", Lat: 28.5200, Lon: 77.0800},
		{ID: 133, Name: "Mahipalpur", Zone: "Najafgarh Zone", Lat: 28.5450, Lon: 77.1000},
		{ID: 134, Name: "Raj Nagar", Zone: "Najafgarh Zone", Lat: 28.5600, Lon: 77.0900},
		{ID: 135, Name: "Palam", Zone: "Najafgarh Zone", Lat: 28.5800, Lon: 77.0950},
		{ID: 136, Name: "Madhu Vihar", Zone: "Najafgarh Zone", Lat: 28.5900, Lon: 77.0900},
		{ID: 137, Name: "Mahavir Enclave", Zone: "Najafgarh Zone", Lat: 28.5950, Lon: 77.0850},
		{ID: 138, Name: "Sadh Nagar", Zone: "Najafgarh Zone", Lat: 28.5880, Lon: 77.0820},
		{ID: 139, Name: "Naraina", Zone: "Karolbagh", Lat: 28.6300, Lon: 77.1350},
		{ID: 140, Name: "Inder Puri", Zone: "Karolbagh", Lat: 28.6350, Lon: 77.1450},
		{ID: 141, Name: "Rajinder Nagar", Zone: "Karolbagh", Lat: 28.6400, Lon: 77.1800},
		{ID: 142, Name: "Daryaganj", Zone: "City S.P.Zone", Lat: 28.6430, Lon: 77.2400},
		{ID: 143, Name: "Sidhartha Nagar", Zone: "Central Zone", Lat: 28.5780, Lon: 77.2550},
		{ID: 144, Name: "Lajpat Nagar", Zone: "Central Zone", Lat: 28.5700, Lon: 77.2450},
		{ID: 145, Name: "Andrews Ganj", Zone: "Central Zone", Lat: 28.5650, Lon: 77.2250},
		{ID: 146, Name: "Amar Colony", Zone: "Central Zone", Lat: 28.5600, Lon: 77.2350},
		{ID: 147, Name: "Kotla Mubarakpur", Zone: "Central Zone", Lat: 28.5750, Lon: 77.2200},
		{ID: 148, Name: "Hauz Khas", Zone: "South Zone", Lat: 28.5500, Lon: 77.2050},
		{ID: 149, Name: "Malviya Nagar", Zone: "South Zone", Lat: 28.5350, Lon: 77.2100},
		{ID: 150, Name: "Green Park", Zone: "South Zone", Lat: 28.5550, Lon: 77.2000},
		{ID: 151, Name: "Munirka", Zone: "South Zone", Lat: 28.5500, Lon: 77.1700},
		{ID: 152, Name: "R.K. Puram", Zone: "South Zone", Lat: 28.5650, Lon: 77.1750},
		{ID: 153, Name: "Vasant Vihar", Zone: "South Zone", Lat: 28.5600, Lon: 77.1550},
		{ID: 154, Name: "Lado Sarai", Zone: "South Zone", Lat: 28.5250, Lon: 77.1950},
		{ID: 155, Name: "Mehrauli", Zone: "South Zone", Lat: 28.5200, Lon: 77.1800},
		{ID: 156, Name: "Vasant Kunj", Zone: "South Zone", Lat: 28.5400, Lon: 77.1500},
		{ID: 157, Name: "Aya Nagar", Zone: "South Zone", Lat: 28.4800, Lon: 77.1300},
		{ID: 158, Name: "Bhati", Zone: "South Zone", Lat: 28.4600, Lon: 77.1700},
		{ID: 159, Name: "Chhatarpur", Zone: "South Zone", Lat: 28.5000, Lon: 77.1600},
		{ID: 160, Name: "Said-ul-Ajaib", Zone: "South Zone", Lat: 28.5150, Lon: 77.1900},
		{ID: 161, Name: "Deoli", Zone: "South Zone", Lat: 28.5050, Lon: 77.2250},
		{ID: 162, Name: "Tigri", Zone: "South Zone", Lat: 28.5000, Lon: 77.2300},
		{ID: 163, Name: "Sangam Vihar-A", Zone: "Central Zone", Lat: 28.5080, Lon: 77.2450},
		{ID: 164, Name: "Dakshin Puri", Zone: "Central Zone", Lat: 28.5150, Lon: 77.2350},
		{ID: 165, Name: "Madangir", Zone: "Central Zone", Lat: 28.5250, Lon: 77.2250},
		{ID: 166, Name: "Pushp Vihar", Zone: "Central Zone", Lat: 28.5300, Lon: 77.2200},
		{ID: 167, Name: "Khanpur", Zone: "Central Zone", Lat: 28.5100, Lon: 77.2200},
		{ID: 168, Name: "Sangam Vihar-C", Zone: "Central Zone", Lat: 28.4980, Lon: 77.2550},
		{ID: 169, Name: "Sangam Vihar-B", Zone: "Central Zone", Lat: 28.5020, Lon: 77.2500},
		{ID: 170, Name: "Tughlakabad Extension", Zone: "Central Zone", Lat: 28.5150, Lon: 77.2600},
		{ID: 171, Name: "Chitaranjan Park", Zone: "Central Zone", Lat: 28.5350, Lon: 77.2500},
		{ID: 172, Name: "Chirag Delhi", Zone: "South Zone", Lat: 28.5380, Lon: 77.2350},
		{ID: 173, Name: "Greater Kailash", Zone: "South Zone", Lat: 28.5450, Lon: 77.2350},
		{ID: 174, Name: "Sri Niwas Puri", Zone: "Central Zone", Lat: 28.5580, Lon: 77.2580},
		{ID: 175, Name: "Kalkaji", Zone: "Central Zone", Lat: 28.5450, Lon: 77.2550},
		{ID: 176, Name: "Govind Puri", Zone: "Central Zone", Lat: 28.5400, Lon: 77.2650},
		{ID: 177, Name: "Harkesh Nagar", Zone: "Central Zone", Lat: 28.5250, Lon: 77.2800},
		{ID: 178, Name: "Tughlakabad", Zone: "Central Zone", Lat: 28.5100, Lon: 77.2750},
		{ID: 179, Name: "Pul Pehladpur", Zone: "Central Zone", Lat: 28.5000, Lon: 77.2850},
		{ID: 180, Name: "Badarpur", Zone: "Central Zone", Lat: 28.4950, Lon: 77.3000},
		{ID: 181, Name: "Molarband", Zone: "Central Zone", Lat: 28.4850, Lon: 77.3050},
		{ID: 182, Name: "Meethapur", Zone: "Central Zone", Lat: 28.4900, Lon: 77.3150},
		{ID: 183, Name: "Hari Nagar Extension", Zone: "Central Zone", Lat: 28.4800, Lon: 77.3200},
		{ID: 184, Name: "Jaitpur", Zone: "Central Zone", Lat: 28.5050, Lon: 77.3100},
		{ID: 185, Name: "Madanpur Khadar East", Zone: "Central Zone", Lat: 28.5200, Lon: 77.3050},
		{ID: 186, Name: "Madanpur Khadar West", Zone: "Central Zone", Lat: 28.5220, Lon: 77.2950},
		{ID: 187, Name: "Sarita Vihar", Zone: "Central Zone", Lat: 28.5300, Lon: 77.2900},
		{ID: 188, Name: "Abul Fazal Enclave", Zone: "Central Zone", Lat: 28.5500, Lon: 77.2980},
		{ID: 189, Name: "Zakir Nagar", Zone: "Central Zone", Lat: 28.5600, Lon: 77.2850},
		{ID: 190, Name: "New Ashok Nagar", Zone: "Shahdara South Zone", Lat: 28.5900, Lon: 77.3100},
		{ID: 191, Name: "Mayur Vihar Phase-I", Zone: "Shahdara South Zone", Lat: 28.6050, Lon: 77.3000},
		{ID: 192, Name: "Trilokpuri", Zone: "Shahdara South Zone", Lat: 28.6080, Lon: 77.3150},
		{ID: 193, Name: "Kondli", Zone: "Shahdara South Zone", Lat: 28.6150, Lon: 77.3300},
		{ID: 194, Name: "Gharoli", Zone: "Shahdara South Zone", Lat: 28.6180, Lon: 77.3350},
		{ID: 195, Name: "Kalyanpuri", Zone: "Shahdara South Zone", Lat: 28.6200, Lon: 77.3200},
		{ID: 196, Name: "Mayur Vihar Phase-II", Zone: "Shahdara South Zone", Lat: 28.6250, Lon: 77.3150},
		{ID: 197, Name: "Patpar Ganj", Zone: "Shahdara South Zone", Lat: 28.6300, Lon: 77.3000},
		{ID: 198, Name: "Vinod Nagar", Zone: "Shahdara South Zone", Lat: 28.6350, Lon: 77.3050},
		{ID: 199, Name: "Mandawali", Zone: "Shahdara South Zone", Lat: 28.6400, Lon: 77.2980},
		{ID: 200, Name: "Pandav Nagar", Zone: "Shahdara South Zone", Lat: 28.6200, Lon: 77.2850},
		{ID: 201, Name: "Lalita Park", Zone: "Shahdara South Zone", Lat: 28.6280, Lon: 77.2750},
		{ID: 202, Name: "Shakarpur", Zone: "Shahdara South Zone", Lat: 28.6350, Lon: 77.2800},
		{ID: 203, Name: "Laxmi Nagar", Zone: "Shahdara South Zone", Lat: 28.6400, Lon: 77.2750},
		{ID: 204, Name: "Preet Vihar", Zone: "Shahdara South Zone", Lat: 28.6420, Lon: 77.2900},
		{ID: 205, Name: "I.P. Extension", Zone: "Shahdara South Zone", Lat: 28.6450, Lon: 77.3000},
		{ID: 206, Name: "Anand Vihar", Zone: "Shahdara South Zone", Lat: 28.6500, Lon: 77.3100},
		{ID: 207, Name: "Vishwas Nagar", Zone: "Shahdara South Zone", Lat: 28.6650, Lon: 77.2950},
		{ID: 208, Name: "Anarkali", Zone: "Shahdara South Zone", Lat: 28.6550, Lon: 77.2850},
		{ID: 209, Name: "Jagat Puri", Zone: "Shahdara South Zone", Lat: 28.6600, Lon: 77.2900},
		{ID: 210, Name: "Geeta Colony", Zone: "Shahdara South Zone", Lat: 28.6550, Lon: 77.2650},
		{ID: 211, Name: "Krishna Nagar", Zone: "Shahdara South Zone", Lat: 28.6600, Lon: 77.2750},
		{ID: 212, Name: "Gandhi Nagar", Zone: "Shahdara South Zone", Lat: 28.6650, Lon: 77.2650},
		{ID: 213, Name: "Shastri Park", Zone: "Shahdara South Zone", Lat: 28.6750, Lon: 77.2550},
		{ID: 214, Name: "Azad Nagar", Zone: "Shahdara South Zone", Lat: 28.6700, Lon: 77.2650},
		{ID: 215, Name: "Shahdara", Zone: "Shahdara North Zone", Lat: 28.6780, Lon: 77.2900},
		{ID: 216, Name: "Jhilmil", Zone: "Shahdara North Zone", Lat: 28.6750, Lon: 77.3100},
		{ID: 217, Name: "Dilshad Colony", Zone: "Shahdara North Zone", Lat: 28.6820, Lon: 77.3150},
		{ID: 218, Name: "Sundar Nagri", Zone: "Shahdara North Zone", Lat: 28.6900, Lon: 77.3200},
		{ID: 219, Name: "Dilshad Garden", Zone: "Shahdara North Zone", Lat: 28.6850, Lon: 77.3250},
		{ID: 220, Name: "Nand Nagri", Zone: "Shahdara North Zone", Lat: 28.6950, Lon: 77.3100},
		{ID: 221, Name: "Ashok Nagar", Zone: "Shahdara North Zone", Lat: 28.6980, Lon: 77.3050},
		{ID: 222, Name: "Ram Nagar East", Zone: "Shahdara North Zone", Lat: 28.6900, Lon: 77.2950},
		{ID: 223, Name: "Rohtash Nagar", Zone: "Shahdara North Zone", Lat: 28.6850, Lon: 77.2850},
		{ID: 224, Name: "Welcome Colony", Zone: "Shahdara North Zone", Lat: 28.6800, Lon: 77.2750},
		{ID: 225, Name: "Seelampur", Zone: "Shahdara North Zone", Lat: 28.6750, Lon: 77.2650},
		{ID: 226, Name: "Gautam Puri", Zone: "Shahdara North Zone", Lat: 28.6800, Lon: 77.2600},
		{ID: 227, Name: "Chauhan Banger", Zone: "Shahdara North Zone", Lat: 28.6780, Lon: 77.2550},
		{ID: 228, Name: "Maujpur", Zone: "Shahdara North Zone", Lat: 28.6880, Lon: 77.2700},
		{ID: 229, Name: "Braham Puri", Zone: "Shahdara North Zone", Lat: 28.6750, Lon: 77.2550},
		{ID: 230, Name: "Bhajanpura", Zone: "Shahdara North Zone", Lat: 28.6950, Lon: 77.2600},
		{ID: 231, Name: "Ghonda", Zone: "Shahdara North Zone", Lat: 28.6920, Lon: 77.2650},
		{ID: 232, Name: "Yamuna Vihar", Zone: "Shahdara North Zone", Lat: 28.6980, Lon: 77.2550},
		{ID: 233, Name: "Subhash Mohalla", Zone: "Shahdara North Zone", Lat: 28.7050, Lon: 77.2700},
		{ID: 234, Name: "Kabir Nagar", Zone: "Shahdara North Zone", Lat: 28.7000, Lon: 77.2800},
		{ID: 235, Name: "Gorakh Park", Zone: "Shahdara North Zone", Lat: 28.6950, Lon: 77.2850},
		{ID: 236, Name: "Kardam Puri", Zone: "Shahdara North Zone", Lat: 28.6900, Lon: 77.2900},
		{ID: 237, Name: "Harsh Vihar", Zone: "Shahdara North Zone", Lat: 28.7100, Lon: 77.3000},
		{ID: 238, Name: "Saboli", Zone: "Shahdara North Zone", Lat: 28.7000, Lon: 77.3100},
		{ID: 239, Name: "Gokal Puri", Zone: "Shahdara North Zone", Lat: 28.7150, Lon: 77.2850},
		{ID: 240, Name: "Joharipur", Zone: "Shahdara North Zone", Lat: 28.7120, Lon: 77.2950},
		{ID: 241, Name: "Karawal Nagar-East", Zone: "Shahdara North Zone", Lat: 28.7250, Lon: 77.2700},
		{ID: 242, Name: "Dayalpur", Zone: "Shahdara North Zone", Lat: 28.7180, Lon: 77.2650},
		{ID: 243, Name: "Mustafabad", Zone: "Shahdara North Zone", Lat: 28.7200, Lon: 77.2800},
		{ID: 244, Name: "Nehru Vihar", Zone: "Shahdara North Zone", Lat: 28.7150, Lon: 77.2550},
		{ID: 245, Name: "Brij Puri", Zone: "Shahdara North Zone", Lat: 28.7100, Lon: 77.2600},
		{ID: 246, Name: "Sri Ram Colony", Zone: "Shahdara North Zone", Lat: 28.7300, Lon: 77.2650},
		{ID: 247, Name: "Sadatpur", Zone: "Shahdara North Zone", Lat: 28.7350, Lon: 77.2700},
		{ID: 248, Name: "Karawal Nagar-West", Zone: "Shahdara North Zone", Lat: 28.7300, Lon: 77.2550},
		{ID: 249, Name: "Sonia Vihar", Zone: "Shahdara North Zone", Lat: 28.7450, Lon: 77.2500},
		{ID: 250, Name: "Sabapur", Zone: "Shahdara North Zone", Lat: 28.7500, Lon: 77.2600},
	}
}
