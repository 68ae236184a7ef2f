package catalog

// DefaultSongID is the song shown at startup.
const DefaultSongID = "bts-dynamite"

// seedSongs is the built-in catalog.
var seedSongs = []Song{
	{
		ID:         "bts-dynamite",
		Title:      "Dynamite",
		Artist:     "BTS",
		Album:      "BE",
		Year:       2020,
		Genre:      []string{"Pop", "Disco"},
		Language:   "English",
		Popularity: 95,
		CoverImage: "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=300&fit=crop&q=80",
		SpotifyID:  "0t1kP63rueHleOhQkYSXFY",
		YouTubeID:  "gdZLi9oWNZg",
		PreviewURL: "https://p.scdn.co/mp3-preview/example",
		Lyrics:     `'Cause I, I, I'm in the stars tonight
So watch me bring the fire and set the night alight
Shoes on, get up in the morn'
Cup of milk, let's rock and roll
King Kong, kick the drum
Rolling on like a Rolling Stone
Sing song when I'm walking home
Jump up to the top, LeBron
Ding-dong, call me on my phone
Ice tea and a game of ping pong

This is getting heavy, can you hear the bass boom? I'm ready
Life is sweet as honey, yeah, this beat cha-ching like money
Disco overload, I'm into that, I'm good to go
I'm diamond, you know I glow up
Hey, so let's go

'Cause I, I, I'm in the stars tonight
So watch me bring the fire and set the night alight
Shining through the city with a little funk and soul
So I'ma light it up like dynamite, woah`,
	},
	{
		ID:         "ed-sheeran-shape-of-you",
		Title:      "Shape of You",
		Artist:     "Ed Sheeran",
		Album:      "÷ (Divide)",
		Year:       2017,
		Genre:      []string{"Pop", "R&B"},
		Language:   "English",
		Popularity: 92,
		CoverImage: "https://images.unsplash.com/photo-1519892300165-cb5542fb47c7?w=300&h=300&fit=crop&q=80",
		SpotifyID:  "7qiZfU4dY1lWllzX7mPBI3",
		YouTubeID:  "JGwWNGJdvx8",
		PreviewURL: "https://p.scdn.co/mp3-preview/example2",
		Lyrics:     `The club isn't the best place to find a lover
So the bar is where I go
Me and my friends at the table doing shots
Drinking fast and then we talk slow
Come over and start up a conversation with just me
And trust me I'll give it a chance now
Take my hand, stop, put Van the Man on the jukebox
And then we start to dance, and now I'm singing like

Girl, you know I want your love
Your love was handmade for somebody like me
Come on now, follow my lead
I may be crazy, don't mind me
Say, boy, let's not talk too much
Grab on my waist and put that body on me
Come on now, follow my lead
Come, come on now, follow my lead

I'm in love with the shape of you
We push and pull like a magnet do
Although my heart is falling too
I'm in love with your body`,
	},
	{
		ID:         "billie-eilish-bad-guy",
		Title:      "Bad Guy",
		Artist:     "Billie Eilish",
		Album:      "When We All Fall Asleep, Where Do We Go?",
		Year:       2019,
		Genre:      []string{"Pop", "Alternative"},
		Language:   "English",
		Popularity: 90,
		CoverImage: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop&q=80",
		SpotifyID:  "2Fxmhks0bxGSBdJ92vM42m",
		YouTubeID:  "DyDfgMOUjCI",
		PreviewURL: "https://p.scdn.co/mp3-preview/example3",
		Lyrics:     `White shirt now red, my bloody nose
Sleeping, you're on your tippy toes
Creeping around like no one knows
Think you're so criminal
Bruises on both my knees for you
Don't say thank you or please
I do what I want when I'm wanting to
My soul? So cynical

So you're a tough guy
Like it really rough guy
Just can't get enough guy
Chest always so puffed guy
I'm that bad type
Make your mama sad type
Make your girlfriend mad tight
Might seduce your dad type
I'm the bad guy, duh

I'm the bad guy`,
	},
	{
		ID:         "dua-lipa-levitating",
		Title:      "Levitating",
		Artist:     "Dua Lipa",
		Album:      "Future Nostalgia",
		Year:       2020,
		Genre:      []string{"Pop", "Disco"},
		Language:   "English",
		Popularity: 88,
		CoverImage: "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=300&fit=crop&q=80",
		Lyrics:     `If you wanna run away with me, I know a galaxy
And I can take you for a ride
I had a premonition that we fell into a rhythm
Where the music don't stop for life
Glitter in the sky, glitter in my eyes
Shining just the way I like
If you're feeling like you need a little bit of company
You met me at the perfect time

You want me, I want you, baby
My sugarboo, I'm levitating
The Milky Way, we're renegading
Yeah, yeah, yeah, yeah, yeah
I got you, moonlight, you're my starlight
I need you all night, come on, dance with me
I'm levitating

You, moonlight, you're my starlight
I need you all night, come on, dance with me
I'm levitating`,
	},
	{
		ID:         "the-weeknd-blinding-lights",
		Title:      "Blinding Lights",
		Artist:     "The Weeknd",
		Album:      "After Hours",
		Year:       2019,
		Genre:      []string{"Pop", "Synthwave"},
		Language:   "English",
		Popularity: 94,
		CoverImage: "https://images.unsplash.com/photo-1514565131-fce0801e5785?w=300&h=300&fit=crop&q=80",
		Lyrics:     `Yeah, I've been trying to call
I've been on my own for long enough
Maybe you can show me how to love, maybe
I feel like I'm just missing something when you're gone
But nothing's wrong when you're here with me
And I can see it in your eyes
You can feel it when we're dancing on the floor
Nothing like this feeling, baby

I feel it in my blood
You're my addiction, I can't get enough
Keep running for the thrill of it, all night, all night
I'm running on empty, try to go the distance
I'm covered in the night
Started in the perfect place, ending at the finish line

I can't sleep until I feel your touch
I said, ooh, I'm blinding lights
I can't sleep until I feel your touch`,
	},
	{
		ID:         "harry-styles-watermelon-sugar",
		Title:      "Watermelon Sugar",
		Artist:     "Harry Styles",
		Album:      "Fine Line",
		Year:       2019,
		Genre:      []string{"Pop Rock", "Indie Pop"},
		Language:   "English",
		Popularity: 85,
		CoverImage: "https://images.unsplash.com/photo-1587049352851-8d4e89133924?w=300&h=300&fit=crop&q=80",
		Lyrics:     `Tastes like strawberries on a summer evenin'
And it sounds just like a song
I want more berries and that summer feelin'
It's so wonderful and warm

Breathe me in, breathe me out
I don't know if I could ever go without
I'm just thinking out loud
I don't know if I could ever go without

Watermelon sugar high
Watermelon sugar high
Watermelon sugar high
Watermelon sugar

Strawberries on a summer evenin'
Baby, you're the end of June
I want your belly and that summer feelin'
Getting washed away in you

Breathe me in, breathe me out
I don't know if I could ever go without

Watermelon sugar high`,
	},
	{
		ID:         "ariana-grande-thank-u-next",
		Title:      "Thank U, Next",
		Artist:     "Ariana Grande",
		Album:      "Thank U, Next",
		Year:       2018,
		Genre:      []string{"Pop", "R&B"},
		Language:   "English",
		Popularity: 89,
		CoverImage: "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=300&fit=crop&q=80",
		Lyrics:     `Thought I'd end up with Sean
But he wasn't a match
Wrote some songs about Ricky
Now I listen and laugh
Even almost got married
And for Pete, I'm so thankful
Wish I could say thank you to Malcolm
'Cause he was an angel

One taught me love
One taught me patience
And one taught me pain
Now, I'm so amazing
Say I've loved and I've lost
But that's not what I see
So, look what I got
Look what you taught me
And for that, I say

Thank you, next (next)
Thank you, next (next)
Thank you, next
I'm so fuckin' grateful for my ex
Thank you, next (next)
Thank you, next (next)
Thank you, next (next)
I'm so fuckin' grateful for my ex`,
	},
	{
		ID:         "taylor-swift-shake-it-off",
		Title:      "Shake It Off",
		Artist:     "Taylor Swift",
		Album:      "1989",
		Year:       2014,
		Genre:      []string{"Pop"},
		Language:   "English",
		Popularity: 91,
		CoverImage: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=300&h=300&fit=crop&q=80",
		Lyrics:     `I stay out too late
Got nothing in my brain
That's what people say, mmm-mmm
That's what people say, mmm-mmm

I go on too many dates
But I can't make them stay
At least that's what people say, mmm-mmm
That's what people say, mmm-mmm

But I keep cruising
Can't stop, won't stop moving
It's like I got this music
In my mind saying, "It's gonna be alright"

'Cause the players gonna play, play, play, play, play
And the haters gonna hate, hate, hate, hate, hate
Baby, I'm just gonna shake, shake, shake, shake, shake
I shake it off, I shake it off
Heartbreakers gonna break, break, break, break, break
And the fakers gonna fake, fake, fake, fake, fake
Baby, I'm just gonna shake, shake, shake, shake, shake
I shake it off, I shake it off`,
	},
	{
		ID:         "coldplay-yellow",
		Title:      "Yellow",
		Artist:     "Coldplay",
		Album:      "Parachutes",
		Year:       2000,
		Genre:      []string{"Alternative Rock", "Pop Rock"},
		Language:   "English",
		Popularity: 87,
		CoverImage: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=300&fit=crop&q=80",
		Lyrics:     `Look at the stars
Look how they shine for you
And everything you do
Yeah, they were all yellow

I came along
I wrote a song for you
And all the things you do
And it was called "Yellow"

So then I took my turn
Oh, what a thing to have done
And it was all yellow

Your skin, oh yeah, your skin and bones
Turn into something beautiful
And you know, you know I love you so
You know I love you so

I swam across
I jumped across for you
Oh, what a thing to do
'Cause you were all yellow

I drew a line
I drew a line for you
Oh, what a thing to do
And it was all yellow`,
	},
	{
		ID:         "adele-someone-like-you",
		Title:      "Someone Like You",
		Artist:     "Adele",
		Album:      "21",
		Year:       2011,
		Genre:      []string{"Pop", "Soul"},
		Language:   "English",
		Popularity: 93,
		CoverImage: "https://images.unsplash.com/photo-1508700115892-45ecd05ae2ad?w=300&h=300&fit=crop&q=80",
		Lyrics:     `I heard that you're settled down
That you found a girl and you're married now
I heard that your dreams came true
Guess she gave you things I didn't give to you

Old friend, why are you so shy?
Ain't like you to hold back or hide from the light

I hate to turn up out of the blue, uninvited
But I couldn't stay away, I couldn't fight it
I had hoped you'd see my face
And that you'd be reminded that for me, it isn't over

Never mind, I'll find someone like you
I wish nothing but the best for you, too
Don't forget me, I beg, I remember you said
Sometimes it lasts in love, but sometimes it hurts instead
Sometimes it lasts in love, but sometimes it hurts instead

You know how the time flies
Only yesterday was the time of our lives
We were born and raised in a summer haze
Bound by the surprise of our glory days`,
	},
}
