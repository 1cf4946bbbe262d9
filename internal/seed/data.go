package seed

// Development fixture data. Comments reference their article by title;
// the loader resolves titles to generated ids at insert time.

type topicFixture struct {
	Description string
	Slug        string
	ImgURL      string
}

type userFixture struct {
	Username  string
	Name      string
	AvatarURL string
}

type articleFixture struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAtMs   int64
	Votes         int
	ArticleImgURL string
}

type commentFixture struct {
	ArticleTitle string
	Body         string
	Votes        int
	Author       string
	CreatedAtMs  int64
}

var topicData = []topicFixture{
	{
		Description: "The man, the Mitch, the legend",
		Slug:        "mitch",
		ImgURL:      "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Description: "Not dogs",
		Slug:        "cats",
		ImgURL:      "https://images.pexels.com/photos/45201/kitty-cat-kitten-pet-45201.jpeg?w=700&h=700",
	},
	{
		Description: "what books are made of",
		Slug:        "paper",
		ImgURL:      "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
}

var userData = []userFixture{
	{
		Username:  "butter_bridge",
		Name:      "jonny",
		AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
	},
	{
		Username:  "icellusedkars",
		Name:      "sam",
		AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
	},
	{
		Username:  "rogersop",
		Name:      "paul",
		AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
	},
	{
		Username:  "lurker",
		Name:      "do_nothing",
		AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
	},
}

var articleData = []articleFixture{
	{
		Title:         "Living in the shadow of a great man",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "I find this existence challenging",
		CreatedAtMs:   1594329060000,
		Votes:         100,
		ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Title:         "Sony Vaio; or, The Laptop",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "Call me Mitchell. Some years ago..",
		CreatedAtMs:   1602828180000,
		ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Title:         "Eight pug gifs that remind me of mitch",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "some gifs",
		CreatedAtMs:   1604394720000,
		ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
	{
		Title:         "UNCOVERED: catspiracy to bring down democracy",
		Topic:         "cats",
		Author:        "rogersop",
		Body:          "Bastet walks amongst us, and the cats are taking arms!",
		CreatedAtMs:   1596464040000,
		ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
	},
}

var commentData = []commentFixture{
	{
		ArticleTitle: "Living in the shadow of a great man",
		Body:         "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!",
		Votes:        16,
		Author:       "butter_bridge",
		CreatedAtMs:  1586179020000,
	},
	{
		ArticleTitle: "Living in the shadow of a great man",
		Body:         "The beautiful thing about treasure is that it exists.",
		Votes:        14,
		Author:       "butter_bridge",
		CreatedAtMs:  1604113380000,
	},
	{
		ArticleTitle: "Sony Vaio; or, The Laptop",
		Body:         "Ambidextrous marsupial",
		Votes:        0,
		Author:       "icellusedkars",
		CreatedAtMs:  1600560600000,
	},
	{
		ArticleTitle: "Sony Vaio; or, The Laptop",
		Body:         "git push origin master",
		Votes:        0,
		Author:       "icellusedkars",
		CreatedAtMs:  1592641440000,
	},
	{
		ArticleTitle: "UNCOVERED: catspiracy to bring down democracy",
		Body:         "I am 100% sure that we're not completely sure.",
		Votes:        1,
		Author:       "butter_bridge",
		CreatedAtMs:  1604322840000,
	},
}
