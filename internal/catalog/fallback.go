package catalog

import "github.com/osint-atlas/atlas/internal/model"

// fallbackTools is the static catalog used when the backend is unreachable
// or not configured.
var fallbackTools = []model.Tool{
	{
		ID:           1,
		Name:         "Sherlock",
		Description:  "Hunt down social media accounts by username across 400+ social networks. This tool searches for usernames across social networks and websites, making it essential for finding all online accounts associated with a specific username during investigations.",
		Category:     "Username",
		Status:       model.StatusOnline,
		URL:          "https://github.com/sherlock-project/sherlock",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           2,
		Name:         "WhatsMyName",
		Description:  "Username enumeration tool that checks for username availability across multiple platforms. It helps investigators find social media accounts and online presence associated with specific usernames across various websites and services.",
		Category:     "Username",
		Status:       model.StatusOnline,
		URL:          "https://whatsmyname.app/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           3,
		Name:         "Namechk",
		Description:  "Check username and domain availability across hundreds of social networks and domain extensions. This tool is useful for brand monitoring and finding available usernames across multiple platforms simultaneously.",
		Category:     "Username",
		Status:       model.StatusOnline,
		URL:          "https://namechk.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           4,
		Name:         "Social Searcher",
		Description:  "Real-time social media search engine and monitoring tool. Search for content across multiple social media platforms simultaneously, useful for monitoring mentions, tracking hashtags, and gathering social media intelligence.",
		Category:     "Social Media",
		Status:       model.StatusOnline,
		URL:          "https://www.social-searcher.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           5,
		Name:         "Twint",
		Description:  "Advanced Twitter scraping tool that works without using Twitter's API. Gather tweets, followers, and other Twitter data without API limitations, particularly useful for social media investigations and sentiment analysis projects.",
		Category:     "Social Media",
		Status:       model.StatusOffline,
		URL:          "https://github.com/twintproject/twint",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           6,
		Name:         "IntelTechniques",
		Description:  "Comprehensive collection of OSINT tools and custom search engines for social media investigation. Created by Michael Bazzell, this platform provides specialized search tools for various social media platforms and online services.",
		Category:     "Social Media",
		Status:       model.StatusOnline,
		URL:          "https://inteltechniques.com/tools/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           7,
		Name:         "theHarvester",
		Description:  "Gather emails, subdomains, hosts, employee names from public sources. Uses multiple search engines and data sources to collect information about a target domain, essential for reconnaissance and information gathering phases.",
		Category:     "Email",
		Status:       model.StatusOnline,
		URL:          "https://github.com/laramies/theHarvester",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           8,
		Name:         "Have I Been Pwned",
		Description:  "Check if email addresses have been compromised in data breaches. Search across multiple data breaches to see if an email address has been compromised, crucial for security assessments and personal security awareness.",
		Category:     "Email",
		Status:       model.StatusOnline,
		URL:          "https://haveibeenpwned.com/",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
	{
		ID:           9,
		Name:         "Hunter.io",
		Description:  "Find and verify professional email addresses associated with any website or company. This tool helps locate contact information for businesses and individuals, useful for outreach and investigation purposes.",
		Category:     "Email",
		Status:       model.StatusOnline,
		URL:          "https://hunter.io/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           10,
		Name:         "Holehe",
		Description:  "Check if an email address is attached to an account on over 120 websites. This tool helps investigators determine which services an email address is registered with, useful for account enumeration and investigation.",
		Category:     "Email",
		Status:       model.StatusOnline,
		URL:          "https://github.com/megadose/holehe",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           11,
		Name:         "Shodan",
		Description:  "Search engine for Internet-connected devices and services. Crawls the internet to find and index devices like webcams, routers, servers, and IoT devices, invaluable for security researchers and penetration testers.",
		Category:     "Network",
		Status:       model.StatusOnline,
		URL:          "https://www.shodan.io/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           12,
		Name:         "Censys",
		Description:  "Search engine for finding and analyzing Internet-connected devices. Provides detailed information about hosts and websites across the internet, offering more detailed analysis than basic port scanners for security research.",
		Category:     "Network",
		Status:       model.StatusOnline,
		URL:          "https://censys.io/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           13,
		Name:         "Nmap",
		Description:  "Network discovery and security auditing tool. Industry standard for network reconnaissance and security scanning, can discover hosts, services, operating systems, and vulnerabilities across networks.",
		Category:     "Network",
		Status:       model.StatusOnline,
		URL:          "https://nmap.org/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           14,
		Name:         "Masscan",
		Description:  "High-speed port scanner capable of scanning the entire Internet in under 6 minutes. Designed for large-scale network reconnaissance and security assessments, particularly useful for discovering open ports across large IP ranges.",
		Category:     "Network",
		Status:       model.StatusOnline,
		URL:          "https://github.com/robertdavidgraham/masscan",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           15,
		Name:         "WhoisXML API",
		Description:  "Domain and IP address WHOIS lookup and research tools. Provides comprehensive domain registration data, DNS records, and historical WHOIS information essential for investigating domain ownership and registration patterns.",
		Category:     "Domains",
		Status:       model.StatusOnline,
		URL:          "https://whoisxmlapi.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           16,
		Name:         "DNSdumpster",
		Description:  "Free domain research tool that discovers hosts related to a domain. Provides DNS reconnaissance and mapping, helping investigators understand the infrastructure and subdomains associated with a target domain.",
		Category:     "Domains",
		Status:       model.StatusOnline,
		URL:          "https://dnsdumpster.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           17,
		Name:         "Sublist3r",
		Description:  "Subdomain enumeration tool designed to enumerate subdomains using OSINT. Gathers subdomains from various sources including search engines, helping map out the complete infrastructure of a target domain.",
		Category:     "Domains",
		Status:       model.StatusOnline,
		URL:          "https://github.com/aboul3la/Sublist3r",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           18,
		Name:         "SecurityTrails",
		Description:  "Historical DNS data and domain intelligence platform. Provides comprehensive DNS history, subdomain discovery, and domain monitoring capabilities for security research and threat intelligence.",
		Category:     "Domains",
		Status:       model.StatusOnline,
		URL:          "https://securitytrails.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           19,
		Name:         "Pipl",
		Description:  "People search engine for finding personal information. Searches deep web sources and public records to find comprehensive information about individuals, effective for finding contact information and social media profiles.",
		Category:     "People",
		Status:       model.StatusOnline,
		URL:          "https://pipl.com/",
		Pricing:      model.PricingPaid,
		Registration: true,
	},
	{
		ID:           20,
		Name:         "TruePeopleSearch",
		Description:  "Free people search engine providing access to public records. Find contact information, addresses, phone numbers, and associated individuals using publicly available data sources.",
		Category:     "People",
		Status:       model.StatusOnline,
		URL:          "https://www.truepeoplesearch.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           21,
		Name:         "FastPeopleSearch",
		Description:  "Quick people search tool for finding personal information from public records. Provides addresses, phone numbers, and associated individuals, useful for background research and contact information discovery.",
		Category:     "People",
		Status:       model.StatusOnline,
		URL:          "https://www.fastpeoplesearch.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           22,
		Name:         "Spokeo",
		Description:  "People search engine that aggregates public records and social media information. Provides comprehensive profiles including contact information, social media accounts, and background information.",
		Category:     "People",
		Status:       model.StatusOnline,
		URL:          "https://www.spokeo.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           23,
		Name:         "TinEye",
		Description:  "Reverse image search engine to find where images appear online. Helps investigators track the origin and usage of images across the web, useful for verifying image authenticity and finding higher resolution versions.",
		Category:     "Images",
		Status:       model.StatusOnline,
		URL:          "https://tineye.com/",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
	{
		ID:           24,
		Name:         "Google Images",
		Description:  "Google's reverse image search functionality. Upload or paste image URLs to find similar images, identify objects, and discover where images appear online, integrated into Google's search ecosystem.",
		Category:     "Images",
		Status:       model.StatusOnline,
		URL:          "https://images.google.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           25,
		Name:         "Yandex Images",
		Description:  "Yandex's reverse image search engine, often more effective than Google for certain types of images. Particularly good at facial recognition and finding images from Eastern European and Russian sources.",
		Category:     "Images",
		Status:       model.StatusOnline,
		URL:          "https://yandex.com/images/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           26,
		Name:         "Jeffrey's Image Metadata Viewer",
		Description:  "Online tool for extracting and viewing EXIF data from images. Reveals camera settings, GPS coordinates, timestamps, and other metadata that can be crucial for image analysis and verification.",
		Category:     "Images",
		Status:       model.StatusOnline,
		URL:          "http://exif.regex.info/exif.cgi",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           27,
		Name:         "GeoSpy",
		Description:  "AI-powered geolocation tool that can identify locations from images. Uses machine learning to analyze visual clues in photographs to determine where they were taken, useful for image verification and investigation.",
		Category:     "Geolocation",
		Status:       model.StatusOnline,
		URL:          "https://geospy.web.app/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           28,
		Name:         "What3Words",
		Description:  "Location reference system that divides the world into 3m x 3m squares, each with a unique three-word address. Useful for precise location identification and sharing coordinates in an easy-to-remember format.",
		Category:     "Geolocation",
		Status:       model.StatusOnline,
		URL:          "https://what3words.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           29,
		Name:         "GeoGuessr",
		Description:  "Geography game that can be used for location training and geolocation skills development. While primarily a game, it's useful for training investigators to recognize geographical features and locations.",
		Category:     "Geolocation",
		Status:       model.StatusOnline,
		URL:          "https://www.geoguessr.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           30,
		Name:         "Wayback Machine",
		Description:  "View archived versions of websites from the past. The Internet Archive's tool stores billions of web pages over time, essential for seeing how websites looked in the past and recovering deleted content.",
		Category:     "Archive Tools",
		Status:       model.StatusOnline,
		URL:          "https://web.archive.org/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           31,
		Name:         "Archive.today",
		Description:  "Website archiving service that creates permanent snapshots of web pages. Useful for preserving evidence and accessing content that may have been removed or modified since original publication.",
		Category:     "Archive Tools",
		Status:       model.StatusOnline,
		URL:          "https://archive.today/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           32,
		Name:         "CachedView",
		Description:  "Access cached versions of websites from Google, Bing, and other search engines. Provides multiple sources for viewing previously indexed versions of web pages when current versions are unavailable.",
		Category:     "Archive Tools",
		Status:       model.StatusOnline,
		URL:          "http://cachedview.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           33,
		Name:         "FOCA",
		Description:  "Find metadata and hidden information in documents. Analyzes documents found on web pages and extracts valuable metadata that can reveal information about software used, usernames, and folder paths.",
		Category:     "Documents",
		Status:       model.StatusWarning,
		URL:          "https://github.com/ElevenPaths/FOCA",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           34,
		Name:         "Metagoofil",
		Description:  "Extract metadata from public documents found on target websites. Searches for and downloads documents from target websites, then extracts metadata that can reveal internal network information.",
		Category:     "Documents",
		Status:       model.StatusWarning,
		URL:          "https://github.com/laramies/metagoofil",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           35,
		Name:         "DocumentCloud",
		Description:  "Platform for analyzing, annotating, and publishing documents. Provides tools for document analysis, OCR, and collaborative investigation, particularly useful for investigative journalism and research.",
		Category:     "Documents",
		Status:       model.StatusOnline,
		URL:          "https://www.documentcloud.org/",
		Pricing:      model.PricingFree,
		Registration: true,
	},
	{
		ID:           36,
		Name:         "Maltego",
		Description:  "Interactive data mining tool for link analysis and data visualization. Provides a graphical interface for analyzing relationships between people, companies, domains, and other entities for complex relationship mapping.",
		Category:     "Analysis",
		Status:       model.StatusOnline,
		URL:          "https://www.maltego.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           37,
		Name:         "Gephi",
		Description:  "Open-source network analysis and visualization software. Helps investigators visualize and analyze complex networks and relationships, particularly useful for social network analysis and data visualization.",
		Category:     "Analysis",
		Status:       model.StatusOnline,
		URL:          "https://gephi.org/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           38,
		Name:         "Palantir Gotham",
		Description:  "Enterprise data analysis platform for large-scale investigations. Integrates multiple data sources and provides advanced analytics capabilities for complex investigations and intelligence analysis.",
		Category:     "Analysis",
		Status:       model.StatusOnline,
		URL:          "https://www.palantir.com/platforms/gotham/",
		Pricing:      model.PricingPaid,
		Registration: true,
	},
	{
		ID:           39,
		Name:         "Recon-ng",
		Description:  "Full-featured reconnaissance framework with modular design. Provides a powerful environment for conducting open-source web-based reconnaissance with independent modules and database interaction.",
		Category:     "Reconnaissance",
		Status:       model.StatusOnline,
		URL:          "https://github.com/lanmaster53/recon-ng",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           40,
		Name:         "SpiderFoot",
		Description:  "Automated OSINT collection tool for reconnaissance and threat intelligence. Automates the process of gathering intelligence about a given target, integrating with multiple data sources for comprehensive scans.",
		Category:     "Automation",
		Status:       model.StatusOffline,
		URL:          "https://www.spiderfoot.net/",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
	{
		ID:           41,
		Name:         "Amass",
		Description:  "In-depth attack surface mapping and asset discovery tool. Performs network mapping of attack surfaces and external asset discovery using open source information gathering and active reconnaissance techniques.",
		Category:     "Reconnaissance",
		Status:       model.StatusOnline,
		URL:          "https://github.com/OWASP/Amass",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           42,
		Name:         "VirusTotal",
		Description:  "Free online service that analyzes files and URLs for malicious content. Aggregates results from multiple antivirus engines and website scanners, essential for malware analysis and threat intelligence.",
		Category:     "Threat Intelligence",
		Status:       model.StatusOnline,
		URL:          "https://www.virustotal.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           43,
		Name:         "AlienVault OTX",
		Description:  "Open threat intelligence community platform. Provides access to threat data from security researchers worldwide, including indicators of compromise, attack patterns, and threat intelligence feeds.",
		Category:     "Threat Intelligence",
		Status:       model.StatusOnline,
		URL:          "https://otx.alienvault.com/",
		Pricing:      model.PricingFree,
		Registration: true,
	},
	{
		ID:           44,
		Name:         "ThreatCrowd",
		Description:  "Search engine for threats that provides context and connections between indicators. Helps analysts understand relationships between domains, IPs, email addresses, and file hashes in threat investigations.",
		Category:     "Threat Intelligence",
		Status:       model.StatusOnline,
		URL:          "https://www.threatcrowd.org/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           45,
		Name:         "Hybrid Analysis",
		Description:  "Free malware analysis service powered by Falcon Sandbox. Provides detailed analysis reports for suspicious files and URLs, including behavioral analysis and threat intelligence indicators.",
		Category:     "Threat Intelligence",
		Status:       model.StatusOnline,
		URL:          "https://www.hybrid-analysis.com/",
		Pricing:      model.PricingFree,
		Registration: true,
	},
	{
		ID:           46,
		Name:         "Bellingcat's Auto Archiver",
		Description:  "AI-powered tool for automatically archiving social media content. Uses machine learning to identify and preserve important content from social media platforms for investigative purposes.",
		Category:     "AI-Powered Tools",
		Status:       model.StatusOnline,
		URL:          "https://github.com/bellingcat/auto-archiver",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           47,
		Name:         "FaceCheck.ID",
		Description:  "AI-powered reverse face search engine. Uses facial recognition technology to find images of people across the internet, useful for identity verification and investigation purposes.",
		Category:     "AI-Powered Tools",
		Status:       model.StatusOnline,
		URL:          "https://facecheck.id/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           48,
		Name:         "PimEyes",
		Description:  "AI-powered face search engine that finds faces across the internet. Uses advanced facial recognition to locate images of individuals across various websites and platforms.",
		Category:     "AI-Powered Tools",
		Status:       model.StatusOnline,
		URL:          "https://pimeyes.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           49,
		Name:         "Ahmia",
		Description:  "Search engine for Tor hidden services. Provides a way to search for content on the dark web while maintaining anonymity, useful for threat intelligence and cybercrime investigation.",
		Category:     "Dark Web Search",
		Status:       model.StatusOnline,
		URL:          "https://ahmia.fi/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           50,
		Name:         "DarkSearch",
		Description:  "Dark web search engine that indexes .onion sites. Provides search capabilities for Tor hidden services, helping investigators find relevant content on the dark web.",
		Category:     "Dark Web Search",
		Status:       model.StatusOnline,
		URL:          "https://darksearch.io/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           51,
		Name:         "OnionLand",
		Description:  "Search engine for Tor network hidden services. Indexes and provides search functionality for .onion sites, useful for dark web research and investigation.",
		Category:     "Dark Web Search",
		Status:       model.StatusOnline,
		URL:          "https://onionlandsearchengine.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           52,
		Name:         "Blockchain.info",
		Description:  "Bitcoin blockchain explorer and wallet service. Provides detailed information about Bitcoin transactions, addresses, and blocks, essential for cryptocurrency investigation and analysis.",
		Category:     "Digital Currency",
		Status:       model.StatusOnline,
		URL:          "https://www.blockchain.com/explorer",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           53,
		Name:         "Etherscan",
		Description:  "Ethereum blockchain explorer and analytics platform. Provides comprehensive information about Ethereum transactions, smart contracts, and addresses for cryptocurrency investigation.",
		Category:     "Digital Currency",
		Status:       model.StatusOnline,
		URL:          "https://etherscan.io/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           54,
		Name:         "Crystal Blockchain",
		Description:  "Professional blockchain analytics platform for cryptocurrency investigation. Provides advanced tools for tracking cryptocurrency transactions and identifying suspicious activity.",
		Category:     "Digital Currency",
		Status:       model.StatusOnline,
		URL:          "https://crystalblockchain.com/",
		Pricing:      model.PricingPaid,
		Registration: true,
	},
	{
		ID:           55,
		Name:         "Chainalysis",
		Description:  "Cryptocurrency investigation and compliance platform. Provides tools for tracking cryptocurrency transactions, identifying illicit activity, and ensuring regulatory compliance.",
		Category:     "Digital Currency",
		Status:       model.StatusOnline,
		URL:          "https://www.chainalysis.com/",
		Pricing:      model.PricingPaid,
		Registration: true,
	},
	{
		ID:           56,
		Name:         "FlightRadar24",
		Description:  "Real-time flight tracking service showing aircraft movements worldwide. Provides detailed information about flights, aircraft, and airports, useful for transportation intelligence and investigation.",
		Category:     "Transportation Tracking",
		Status:       model.StatusOnline,
		URL:          "https://www.flightradar24.com/",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
	{
		ID:           57,
		Name:         "MarineTraffic",
		Description:  "Global ship tracking intelligence platform. Provides real-time information about vessel movements, port activities, and maritime traffic worldwide for transportation investigation.",
		Category:     "Transportation Tracking",
		Status:       model.StatusOnline,
		URL:          "https://www.marinetraffic.com/",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
	{
		ID:           58,
		Name:         "FlightAware",
		Description:  "Flight tracking and aviation data platform. Provides comprehensive flight information, aircraft tracking, and aviation analytics for transportation intelligence and investigation.",
		Category:     "Transportation Tracking",
		Status:       model.StatusOnline,
		URL:          "https://flightaware.com/",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
	{
		ID:           59,
		Name:         "VesselFinder",
		Description:  "Ship tracking and maritime intelligence platform. Provides real-time vessel positions, port information, and maritime traffic data for shipping and transportation investigation.",
		Category:     "Transportation Tracking",
		Status:       model.StatusOnline,
		URL:          "https://www.vesselfinder.com/",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
	{
		ID:           60,
		Name:         "CyberChef",
		Description:  "Web app for encryption, encoding, compression and data analysis. Provides a wide range of operations for data manipulation, decoding, and analysis, essential for digital forensics and investigation.",
		Category:     "Encoding/Decoding",
		Status:       model.StatusOnline,
		URL:          "https://gchq.github.io/CyberChef/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           61,
		Name:         "Base64 Decode",
		Description:  "Simple online tool for Base64 encoding and decoding. Useful for decoding Base64 encoded data commonly found in web applications, emails, and other digital communications.",
		Category:     "Encoding/Decoding",
		Status:       model.StatusOnline,
		URL:          "https://www.base64decode.org/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           62,
		Name:         "URL Decoder",
		Description:  "Online tool for URL encoding and decoding. Helps decode URL-encoded strings and parameters, useful for web application analysis and digital investigation.",
		Category:     "Encoding/Decoding",
		Status:       model.StatusOnline,
		URL:          "https://www.urldecoder.org/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           63,
		Name:         "Social Catfish",
		Description:  "Reverse search tool for dating profiles and social media accounts. Helps verify the authenticity of online dating profiles and identify potential catfish or fraudulent accounts.",
		Category:     "Dating Platforms",
		Status:       model.StatusOnline,
		URL:          "https://socialcatfish.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           64,
		Name:         "BeenVerified",
		Description:  "Background check service that includes social media and dating profile searches. Provides comprehensive background information including potential dating profiles and social media presence.",
		Category:     "Dating Platforms",
		Status:       model.StatusOnline,
		URL:          "https://www.beenverified.com/",
		Pricing:      model.PricingPaid,
		Registration: true,
	},
	{
		ID:           65,
		Name:         "Creepy",
		Description:  "Geolocation OSINT tool for gathering location data from social media. Extracts geographical information from social media posts and photos to create location timelines for investigation purposes.",
		Category:     "Geolocation",
		Status:       model.StatusOffline,
		URL:          "https://github.com/ilektrojohn/creepy",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           66,
		Name:         "Wigle",
		Description:  "Wireless network mapping and wardriving database. Provides information about wireless access points and their locations, useful for geolocation and network investigation.",
		Category:     "Network",
		Status:       model.StatusOnline,
		URL:          "https://wigle.net/",
		Pricing:      model.PricingFree,
		Registration: true,
	},
	{
		ID:           67,
		Name:         "Phonebook.cz",
		Description:  "Search engine for finding information about domains, URLs, and email addresses. Provides comprehensive search capabilities for various types of online information and digital footprints.",
		Category:     "Email",
		Status:       model.StatusOnline,
		URL:          "https://phonebook.cz/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           68,
		Name:         "Dehashed",
		Description:  "Database search engine for leaked credentials and data breaches. Provides access to compromised credentials from various data breaches for security research and investigation.",
		Category:     "Threat Intelligence",
		Status:       model.StatusOnline,
		URL:          "https://dehashed.com/",
		Pricing:      model.PricingPaid,
		Registration: true,
	},
	{
		ID:           69,
		Name:         "Intelligence X",
		Description:  "Search engine and data archive for OSINT research. Provides access to various data sources including leaked databases, documents, and other intelligence information.",
		Category:     "Threat Intelligence",
		Status:       model.StatusOnline,
		URL:          "https://intelx.io/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           70,
		Name:         "Spyse",
		Description:  "Internet assets search engine for cybersecurity professionals. Provides comprehensive information about domains, IPs, certificates, and other internet infrastructure for security research.",
		Category:     "Network",
		Status:       model.StatusOnline,
		URL:          "https://spyse.com/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           71,
		Name:         "OSINT Framework",
		Description:  "Comprehensive collection of OSINT tools organized by category. Provides a structured approach to open source intelligence gathering with links to hundreds of useful tools and resources.",
		Category:     "Analysis",
		Status:       model.StatusOnline,
		URL:          "https://osintframework.com/",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           72,
		Name:         "Hunchly",
		Description:  "Web capture tool designed for online investigations. Automatically captures and organizes web pages, images, and other content during investigations for evidence preservation and analysis.",
		Category:     "Analysis",
		Status:       model.StatusOnline,
		URL:          "https://www.hunch.ly/",
		Pricing:      model.PricingPaid,
		Registration: true,
	},
	{
		ID:           73,
		Name:         "Lampyre",
		Description:  "Data analysis and visualization platform for investigations. Provides tools for analyzing large datasets, creating timelines, and visualizing relationships between entities in investigations.",
		Category:     "Analysis",
		Status:       model.StatusOnline,
		URL:          "https://lampyre.io/",
		Pricing:      model.PricingFreemium,
		Registration: true,
	},
	{
		ID:           74,
		Name:         "Mitaka",
		Description:  "Browser extension for OSINT search from context menu. Allows quick searches across multiple OSINT tools directly from selected text in web browsers, streamlining investigation workflows.",
		Category:     "Analysis",
		Status:       model.StatusOnline,
		URL:          "https://github.com/ninoseki/mitaka",
		Pricing:      model.PricingFree,
		Registration: false,
	},
	{
		ID:           75,
		Name:         "Sn1per",
		Description:  "Automated penetration testing framework with OSINT capabilities. Combines reconnaissance, vulnerability scanning, and exploitation in a single platform for comprehensive security assessments.",
		Category:     "Reconnaissance",
		Status:       model.StatusOnline,
		URL:          "https://github.com/1N3/Sn1per",
		Pricing:      model.PricingFreemium,
		Registration: false,
	},
}
