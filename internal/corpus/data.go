package corpus

var defaultPassages = []Passage{
	{
		Reference: "Philippians 4:13",
		Text:      "I can do all things through Christ who strengthens me.",
		Book:      "Philippians",
		Chapter:   4,
		Verses:    "13",
	},
	{
		Reference: "Joshua 1:9",
		Text:      "Have I not commanded you? Be strong and courageous. Do not be afraid; do not be discouraged, for the Lord your God will be with you wherever you go.",
		Book:      "Joshua",
		Chapter:   1,
		Verses:    "9",
	},
	{
		Reference: "Proverbs 3:5-6",
		Text:      "Trust in the Lord with all your heart and lean not on your own understanding; in all your ways submit to him, and he will make your paths straight.",
		Book:      "Proverbs",
		Chapter:   3,
		Verses:    "5-6",
	},
	{
		Reference: "Romans 8:28",
		Text:      "And we know that in all things God works for the good of those who love him, who have been called according to his purpose.",
		Book:      "Romans",
		Chapter:   8,
		Verses:    "28",
	},
	{
		Reference: "Isaiah 40:31",
		Text:      "But those who hope in the Lord will renew their strength. They will soar on wings like eagles; they will run and not grow weary, they will walk and not be faint.",
		Book:      "Isaiah",
		Chapter:   40,
		Verses:    "31",
	},
	{
		Reference: "Psalm 23:1-4",
		Text:      "The Lord is my shepherd; I shall not want. He makes me to lie down in green pastures; He leads me beside the still waters. He restores my soul; He leads me in the paths of righteousness for His name's sake. Yea, though I walk through the valley of the shadow of death, I will fear no evil; for You are with me; Your rod and Your staff, they comfort me.",
		Book:      "Psalm",
		Chapter:   23,
		Verses:    "1-4",
	},
	{
		Reference: "Matthew 5:3-6",
		Text:      "Blessed are the poor in spirit, for theirs is the kingdom of heaven. Blessed are those who mourn, for they will be comforted. Blessed are the meek, for they will inherit the earth. Blessed are those who hunger and thirst for righteousness, for they will be filled.",
		Book:      "Matthew",
		Chapter:   5,
		Verses:    "3-6",
	},
}

var defaultContextQuestions = []ContextQuestion{
	{
		ID:               "q1",
		PassageReference: "Philippians 4:13",
		Question:         "Who wrote the book of Philippians?",
		Options:          []string{"Peter", "Paul", "James", "John"},
		CorrectIndex:     1,
	},
	{
		ID:               "q2",
		PassageReference: "Philippians 4:13",
		Question:         "Where was Paul when he wrote Philippians?",
		Options:          []string{"In the temple", "At sea", "In prison", "In Philippi"},
		CorrectIndex:     2,
	},
	{
		ID:               "q3",
		PassageReference: "Joshua 1:9",
		Question:         "Who is God speaking to in this passage?",
		Options:          []string{"Moses", "Joshua", "David", "Abraham"},
		CorrectIndex:     1,
	},
	{
		ID:               "q4",
		PassageReference: "Joshua 1:9",
		Question:         "What event preceded this command?",
		Options:          []string{"The Exodus from Egypt", "The death of Moses", "The fall of Jericho", "David becoming king"},
		CorrectIndex:     1,
	},
	{
		ID:               "q5",
		PassageReference: "Proverbs 3:5-6",
		Question:         "What genre is the book of Proverbs?",
		Options:          []string{"History", "Prophecy", "Wisdom Literature", "Gospel"},
		CorrectIndex:     2,
	},
	{
		ID:               "q6",
		PassageReference: "Proverbs 3:5-6",
		Question:         "Who is traditionally credited with writing most of Proverbs?",
		Options:          []string{"David", "Solomon", "Moses", "Samuel"},
		CorrectIndex:     1,
	},
	{
		ID:               "q7",
		PassageReference: "Romans 8:28",
		Question:         "Who is the primary audience of the book of Romans?",
		Options:          []string{"Jewish believers only", "The church in Rome", "The Pharisees", "The disciples"},
		CorrectIndex:     1,
	},
	{
		ID:               "q8",
		PassageReference: "Romans 8:28",
		Question:         "What is the main theme of Romans chapter 8?",
		Options:          []string{"The Law of Moses", "Life in the Spirit", "The Second Coming", "Church leadership"},
		CorrectIndex:     1,
	},
	{
		ID:               "q9",
		PassageReference: "Isaiah 40:31",
		Question:         "Isaiah was a prophet to which kingdom?",
		Options:          []string{"Israel (Northern)", "Judah (Southern)", "Babylon", "Persia"},
		CorrectIndex:     1,
	},
	{
		ID:               "q10",
		PassageReference: "Isaiah 40:31",
		Question:         "What is the context of Isaiah chapter 40?",
		Options:          []string{"Judgment on sin", "Comfort and restoration for God's people", "Instructions for worship", "Genealogy records"},
		CorrectIndex:     1,
	},
}

var defaultVerseMatchItems = []VerseMatchItem{
	{Reference: "Philippians 4:13", Text: "I can do all things through Christ who strengthens me."},
	{Reference: "Joshua 1:9", Text: "Be strong and courageous. Do not be afraid; do not be discouraged."},
	{Reference: "Proverbs 3:5-6", Text: "Trust in the Lord with all your heart and lean not on your own understanding."},
	{Reference: "Romans 8:28", Text: "In all things God works for the good of those who love him."},
	{Reference: "Isaiah 40:31", Text: "Those who hope in the Lord will renew their strength."},
	{Reference: "Jeremiah 29:11", Text: "For I know the plans I have for you, declares the Lord."},
	{Reference: "Psalm 23:1", Text: "The Lord is my shepherd; I shall not want."},
	{Reference: "John 3:16", Text: "For God so loved the world that he gave his one and only Son."},
	{Reference: "Galatians 5:22-23", Text: "The fruit of the Spirit is love, joy, peace, forbearance, kindness."},
	{Reference: "2 Timothy 1:7", Text: "God has not given us a spirit of fear, but of power, love, and self-discipline."},
}

var defaultMasteryPacks = []MasteryPack{
	{
		ID:          "salvation",
		Name:        "Salvation",
		Description: "The foundations of the Gospel and God's gift of eternal life.",
		Verses: []Passage{
			{
				Reference: "John 3:16",
				Text:      "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
				Book:      "John",
				Chapter:   3,
				Verses:    "16",
			},
			{
				Reference: "Romans 5:8",
				Text:      "But God commendeth his love toward us, in that, while we were yet sinners, Christ died for us.",
				Book:      "Romans",
				Chapter:   5,
				Verses:    "8",
			},
			{
				Reference: "Ephesians 2:8-9",
				Text:      "For by grace are ye saved through faith; and that not of yourselves: it is the gift of God: Not of works, lest any man should boast.",
				Book:      "Ephesians",
				Chapter:   2,
				Verses:    "8-9",
			},
			{
				Reference: "Romans 10:9",
				Text:      "That if thou shalt confess with thy mouth the Lord Jesus, and shalt believe in thine heart that God hath raised him from the dead, thou shalt be saved.",
				Book:      "Romans",
				Chapter:   10,
				Verses:    "9",
			},
			{
				Reference: "Acts 4:12",
				Text:      "Neither is there salvation in any other: for there is none other name under heaven given among men, whereby we must be saved.",
				Book:      "Acts",
				Chapter:   4,
				Verses:    "12",
			},
		},
	},
	{
		ID:          "faith",
		Name:        "Faith",
		Description: "Trusting in God's promises and walking by his Spirit.",
		Verses: []Passage{
			{
				Reference: "Hebrews 11:1",
				Text:      "Now faith is the substance of things hoped for, the evidence of things not seen.",
				Book:      "Hebrews",
				Chapter:   11,
				Verses:    "1",
			},
			{
				Reference: "2 Corinthians 5:7",
				Text:      "For we walk by faith, not by sight.",
				Book:      "2 Corinthians",
				Chapter:   5,
				Verses:    "7",
			},
			{
				Reference: "Proverbs 3:5-6",
				Text:      "Trust in the LORD with all thine heart; and lean not unto thine own understanding. In all thy ways acknowledge him, and he shall direct thy paths.",
				Book:      "Proverbs",
				Chapter:   3,
				Verses:    "5-6",
			},
			{
				Reference: "Matthew 17:20",
				Text:      "If ye have faith as a grain of mustard seed, ye shall say unto this mountain, Remove hence to yonder place; and it shall remove; and nothing shall be impossible unto you.",
				Book:      "Matthew",
				Chapter:   17,
				Verses:    "20",
			},
			{
				Reference: "Galatians 2:20",
				Text:      "I am crucified with Christ: nevertheless I live; yet not I, but Christ liveth in me: and the life which I now live in the flesh I live by the faith of the Son of God, who loved me, and gave himself for me.",
				Book:      "Galatians",
				Chapter:   2,
				Verses:    "20",
			},
		},
	},
	{
		ID:          "identity",
		Name:        "Identity in Christ",
		Description: "Who we are in the eyes of our Creator and Redeemer.",
		Verses: []Passage{
			{
				Reference: "2 Corinthians 5:17",
				Text:      "Therefore if any man be in Christ, he is a new creature: old things are passed away; behold, all things are become new.",
				Book:      "2 Corinthians",
				Chapter:   5,
				Verses:    "17",
			},
			{
				Reference: "1 Peter 2:9",
				Text:      "But ye are a chosen generation, a royal priesthood, an holy nation, a peculiar people; that ye should shew forth the praises of him who hath called you out of darkness into his marvellous light.",
				Book:      "1 Peter",
				Chapter:   2,
				Verses:    "9",
			},
			{
				Reference: "Genesis 1:27",
				Text:      "So God created man in his own image, in the image of God created he him; male and female created he them.",
				Book:      "Genesis",
				Chapter:   1,
				Verses:    "27",
			},
			{
				Reference: "Psalm 139:14",
				Text:      "I will praise thee; for I am fearfully and wonderfully made: marvellous are thy works; and that my soul knoweth right well.",
				Book:      "Psalm",
				Chapter:   139,
				Verses:    "14",
			},
			{
				Reference: "Ephesians 2:10",
				Text:      "For we are his workmanship, created in Christ Jesus unto good works, which God hath before ordained that we should walk in them.",
				Book:      "Ephesians",
				Chapter:   2,
				Verses:    "10",
			},
		},
	},
	{
		ID:          "wisdom",
		Name:        "Wisdom",
		Description: "Gaining understanding and discernment from God's Word.",
		Verses: []Passage{
			{
				Reference: "Proverbs 1:7",
				Text:      "The fear of the LORD is the beginning of knowledge: but fools despise wisdom and instruction.",
				Book:      "Proverbs",
				Chapter:   1,
				Verses:    "7",
			},
			{
				Reference: "James 1:5",
				Text:      "If any of you lack wisdom, let him ask of God, that giveth to all men liberally, and upbraideth not; and it shall be given him.",
				Book:      "James",
				Chapter:   1,
				Verses:    "5",
			},
			{
				Reference: "Psalm 119:105",
				Text:      "Thy word is a lamp unto my feet, and a light unto my path.",
				Book:      "Psalm",
				Chapter:   119,
				Verses:    "105",
			},
			{
				Reference: "Colossians 3:16",
				Text:      "Let the word of Christ dwell in you richly in all wisdom; teaching and admonishing one another in psalms and hymns and spiritual songs, singing with grace in your hearts to the Lord.",
				Book:      "Colossians",
				Chapter:   3,
				Verses:    "16",
			},
			{
				Reference: "Proverbs 4:7",
				Text:      "Wisdom is the principal thing; therefore get wisdom: and with all thy getting get understanding.",
				Book:      "Proverbs",
				Chapter:   4,
				Verses:    "7",
			},
		},
	},
	{
		ID:          "discipline",
		Name:        "Spiritual Discipline",
		Description: "Training ourselves in godliness and persevering in our faith.",
		Verses: []Passage{
			{
				Reference: "1 Timothy 4:7-8",
				Text:      "But refuse profane and old wives' fables, and exercise thyself rather unto godliness. For bodily exercise profiteth little: but godliness is profitable unto all things, having promise of the life that now is and of that which is to come.",
				Book:      "1 Timothy",
				Chapter:   4,
				Verses:    "7-8",
			},
			{
				Reference: "1 Corinthians 9:24-27",
				Text:      "Know ye not that they which run in a race run all, but one receiveth the prize? So run, that ye may obtain. And every man that striveth for the mastery is temperate in all things. Now they do it to obtain a corruptible crown; but we an incorruptible. I therefore so run, not as uncertainly; so fight I, not as one that beateth the air: But I keep under my body, and bring it into subjection: lest that by any means, when I have preached to others, I myself should be a castaway.",
				Book:      "1 Corinthians",
				Chapter:   9,
				Verses:    "24-27",
			},
			{
				Reference: "2 Timothy 2:3",
				Text:      "Thou therefore endure hardness, as a good soldier of Jesus Christ.",
				Book:      "2 Timothy",
				Chapter:   2,
				Verses:    "3",
			},
			{
				Reference: "Hebrews 12:1-2",
				Text:      "Wherefore seeing we also are compassed about with so great a cloud of witnesses, let us lay aside every weight, and the sin which doth so easily beset us, and let us run with patience the race that is set before us, Looking unto Jesus the author and finisher of our faith; who for the joy that was set before him endured the cross, despising the shame, and is set down at the right hand of the throne of God.",
				Book:      "Hebrews",
				Chapter:   12,
				Verses:    "1-2",
			},
			{
				Reference: "Galatians 6:9",
				Text:      "And let us not be weary in well doing: for in due season we shall reap, if we faint not.",
				Book:      "Galatians",
				Chapter:   6,
				Verses:    "9",
			},
		},
	},
}
