package catalog

var programs = []string{
	"Software Engineering",
	"Cyber Security",
	"AI & Robotics",
	"Mechanical Engineering",
	"Chemical & Materials Engineering",
	"Applied Mathematics",
	"Economics & Data Science",
	"Pedagogy",
	"Industrial Management",
}

var classes = map[string]map[string][]string{
	"Software Engineering": {
		"1": {"Intro to Programming", "Math 1", "English 1"},
		"2": {"OOP", "Data Structures", "Math 2"},
		"3": {"Algorithms", "Database Systems", "Computer Architecture"},
		"4": {"Operating Systems", "Web Technologies", "Discrete Mathematics"},
		"5": {"Software Engineering", "Mobile App Development", "Networks"},
		"6": {"Software Project Management", "Machine Learning", "Cloud Computing"},
		"7": {"Distributed Systems", "Cybersecurity", "AI Fundamentals"},
		"8": {"Capstone Project", "DevOps", "Advanced Software Design"},
	},
	"Cyber Security": {
		"1": {"Intro to IT", "Math 1", "English 1"},
		"2": {"Networking Basics", "Cryptography", "Math 2"},
		"3": {"System Security", "Linux Basics", "Data Structures"},
		"4": {"Web Security", "Malware Analysis", "Network Security"},
		"5": {"Security Audit", "Python for Security", "Cyber Law"},
		"6": {"Digital Forensics", "Cloud Security", "Penetration Testing"},
		"7": {"Secure Coding", "Incident Response", "Ethical Hacking"},
		"8": {"Capstone Project", "Advanced Threat Detection", "Security Management"},
	},
	"AI & Robotics": {
		"1": {"Intro to Programming", "Math 1", "English 1"},
		"2": {"OOP", "Linear Algebra", "Data Structures"},
		"3": {"Probability & Statistics", "Control Systems", "Robotics Fundamentals"},
		"4": {"Machine Learning", "Computer Vision", "AI Ethics"},
		"5": {"Deep Learning", "Robot Kinematics", "Embedded Systems"},
		"6": {"Natural Language Processing", "IoT", "Neural Networks"},
		"7": {"Reinforcement Learning", "Advanced Robotics", "AI Planning"},
		"8": {"Capstone Project", "Autonomous Systems", "AI Integration"},
	},
	"Mechanical Engineering": {
		"1": {"Engineering Math", "Physics 1", "Technical Drawing"},
		"2": {"Statics", "Math 2", "Material Science"},
		"3": {"Dynamics", "Thermodynamics 1", "Mechanics of Materials"},
		"4": {"Fluid Mechanics", "Thermodynamics 2", "Manufacturing Processes"},
		"5": {"Heat Transfer", "Machine Design", "Mechatronics"},
		"6": {"Control Systems", "Engineering Economics", "CAD/CAM"},
		"7": {"Robotics", "Energy Systems", "Project Management"},
		"8": {"Capstone Project", "Advanced Manufacturing", "Sustainable Design"},
	},
	"Chemical & Materials Engineering": {
		"1": {"Intro to Chemistry", "Math 1", "Physics 1"},
		"2": {"Organic Chemistry", "Math 2", "Material Properties"},
		"3": {"Thermodynamics", "Fluid Mechanics", "Heat Transfer"},
		"4": {"Chemical Kinetics", "Mass Transfer", "Instrumentation"},
		"5": {"Process Design", "Environmental Engineering", "Polymers"},
		"6": {"Nanomaterials", "Energy Systems", "Reaction Engineering"},
		"7": {"Advanced Materials", "Safety Engineering", "Project Management"},
		"8": {"Capstone Project", "Biochemical Engineering", "Sustainable Processes"},
	},
	"Applied Mathematics": {
		"1": {"Calculus 1", "Linear Algebra", "Introduction to Programming"},
		"2": {"Calculus 2", "Discrete Mathematics", "Statistics 1"},
		"3": {"Real Analysis", "Numerical Methods", "Probability"},
		"4": {"Differential Equations", "Complex Analysis", "Algebra"},
		"5": {"Mathematical Modelling", "Optimization", "Statistics 2"},
		"6": {"Computational Mathematics", "Graph Theory", "Machine Learning"},
		"7": {"Stochastic Processes", "Data Analysis", "Dynamical Systems"},
		"8": {"Capstone Project", "Advanced Modelling", "Big Data Analytics"},
	},
	"Economics & Data Science": {
		"1": {"Intro to Economics", "Math 1", "Intro to Programming"},
		"2": {"Microeconomics", "Statistics", "Math 2"},
		"3": {"Macroeconomics", "Data Analysis", "Econometrics"},
		"4": {"Machine Learning", "Python for Data Science", "Game Theory"},
		"5": {"Big Data", "Data Visualization", "Development Economics"},
		"6": {"Forecasting", "Time Series Analysis", "Behavioral Economics"},
		"7": {"AI in Economics", "Policy Analysis", "Deep Learning"},
		"8": {"Capstone Project", "Advanced Econometrics", "Data Ethics"},
	},
	"Pedagogy": {
		"1": {"Introduction to Education", "Psychology", "English 1"},
		"2": {"Child Development", "Sociology", "Teaching Skills"},
		"3": {"Curriculum Design", "Assessment Methods", "Philosophy of Education"},
		"4": {"Classroom Management", "Inclusive Education", "Educational Technology"},
		"5": {"Research in Education", "Language Teaching", "Mentoring"},
		"6": {"Educational Psychology", "Creative Pedagogy", "Global Perspectives"},
		"7": {"Leadership in Education", "Learning Theories", "Digital Learning"},
		"8": {"Capstone Project", "Policy & Reform", "Educational Innovation"},
	},
	"Industrial Management": {
		"1": {"Intro to Management", "Math 1", "Accounting Basics"},
		"2": {"Business Statistics", "Operations Management", "Economics"},
		"3": {"Project Management", "Logistics", "Marketing"},
		"4": {"Quality Control", "Financial Management", "HR Management"},
		"5": {"Production Systems", "Supply Chain", "Risk Management"},
		"6": {"Lean Management", "ERP Systems", "Industrial Safety"},
		"7": {"Strategic Management", "Innovation", "Data Analytics"},
		"8": {"Capstone Project", "Sustainability", "Industrial Automation"},
	},
}
