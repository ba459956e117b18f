package texts

// Built-in corpus used when no texts file overrides it.

var defaultPhrases = []string{
	"The quick brown fox jumps over the lazy dog",
	"Pack my box with five dozen liquor jugs",
	"How vexingly quick daft zebras jump",
	"Sphinx of black quartz, judge my vow",
	"Two driven jocks help fax my big quiz",
	"Five quacking zephyrs jolt my wax bed",
	"The five boxing wizards jump quickly",
	"Jackdaws love my big sphinx of quartz",
	"My girl wove six dozen plaid jackets before she quit",
	"Sixty zippers were quickly picked from the woven jute bag",
	"A quick movement of the enemy will jeopardize six gunboats",
	"All questions asked by five watch experts amazed the judge",
	"Back in June we delivered oxygen equipment of the same size",
	"A mad boxer shot a quick, gloved jab to the jaw of his dizzy opponent",
	"The job requires extra pluck and zeal from every young wage earner",
	"We promptly judged antique ivory buckles for the next prize",
	"A large fawn jumped quickly over white zinc boxes",
	"Six big devils from Japan quickly forgot how to waltz",
}

var defaultParagraphs = []string{
	"The art of typing quickly and accurately is a skill that takes time to develop. With consistent practice and focus, anyone can improve their typing speed. The key is to maintain proper hand position and avoid looking at the keyboard. Over time, muscle memory will develop and typing will become second nature. Remember to take breaks and stretch your hands regularly.",

	"Programming is not just about writing code, it is about solving problems creatively. Every algorithm you write represents a unique solution to a challenge. The best programmers are those who can think logically and break down complex problems into smaller, manageable pieces. Always strive to write clean, readable code that others can understand and maintain.",

	"The ocean is a vast and mysterious place, covering more than seventy percent of our planet's surface. Deep beneath the waves lie unexplored ecosystems teeming with life. From tiny plankton to massive whales, the ocean supports an incredible diversity of species. Scientists continue to discover new creatures in the darkest depths, reminding us how much we still have to learn about our world.",

	"Coffee has become an essential part of modern culture, fueling millions of people each day. The journey from bean to cup involves careful cultivation, harvesting, roasting, and brewing. Different regions produce beans with unique flavor profiles, from fruity Ethiopian varieties to rich Colombian blends. Whether you prefer it black or with milk, coffee brings people together and provides a moment of comfort.",

	"Reading books opens windows to new worlds and perspectives we might never otherwise encounter. Through literature, we can experience different time periods, cultures, and ways of thinking. A good book can make us laugh, cry, or see the world in a completely new light. In our digital age, the timeless pleasure of turning pages and getting lost in a story remains irreplaceable.",

	"Exercise is crucial for maintaining both physical and mental health throughout our lives. Regular physical activity strengthens muscles, improves cardiovascular health, and releases endorphins that boost mood. You don't need expensive equipment or a gym membership to stay active. Simple activities like walking, stretching, or bodyweight exercises can make a significant difference in how you feel each day.",
}
