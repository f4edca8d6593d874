// ABOUTME: Inline RSS, ATOM and RDF documents shared by the parse tests
// ABOUTME: Each fixture exercises fallbacks, groups and text-construct handling for its dialect

package parse

const rss20XML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Test RSS Feed</title>
    <link>https://example.com</link>
    <description>A test RSS feed</description>
    <language>en-us</language>
    <copyright>Copyright 2006</copyright>
    <generator>hand</generator>
    <category>tech</category>
    <lastBuildDate>Mon, 02 Jan 2006 15:04:05 GMT</lastBuildDate>
    <image>
      <url>https://example.com/logo.png</url>
      <title>Logo</title>
      <link>https://example.com</link>
    </image>
    <item>
      <guid>https://example.com/post/1</guid>
      <title>First Post</title>
      <link>https://example.com/post/1</link>
      <dc:creator>John Doe</dc:creator>
      <pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
      <description>Plain description</description>
      <content:encoded><![CDATA[<p>Hello <img src="https://example.com/a.png" alt="An A"> world</p>]]></content:encoded>
      <category>golang</category>
      <source url="https://other.example.com/rss">Other</source>
      <enclosure type="audio/mpeg" url="http://x/a.mp3" length="123"/>
    </item>
    <item>
      <title>Second Post</title>
      <link>https://example.com/post/2</link>
      <description>&lt;p&gt;Second &lt;img src="https://example.com/b.png"&gt;&lt;/p&gt;</description>
    </item>
  </channel>
</rss>`

const atomXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xml:lang="fr">
  <id>urn:feed</id>
  <title>Test Atom Feed</title>
  <subtitle>Sub</subtitle>
  <link rel="self" href="https://example.com/feed.atom"/>
  <link rel="alternate" href="https://example.com/"/>
  <logo>https://example.com/logo.png</logo>
  <rights>CC</rights>
  <generator>gen</generator>
  <updated>2006-01-02T15:04:05Z</updated>
  <author><name>Feed Author</name></author>
  <category term="feedcat"/>
  <entry>
    <id>urn:1</id>
    <title>First Entry</title>
    <link rel="alternate" href="https://example.com/1"/>
    <author><name>Jane Smith</name></author>
    <published>2006-01-02T15:04:05Z</published>
    <updated>2006-01-02T16:04:05+01:00</updated>
    <content type="xhtml"><div xmlns="http://www.w3.org/1999/xhtml"><p style="color:red">Hi <b onclick="x()">there</b></p></div></content>
    <category term="science"/>
  </entry>
  <entry>
    <id>urn:2</id>
    <title>No Content</title>
    <link href="https://example.com/2"/>
    <updated>2006-01-03T15:04:05Z</updated>
  </entry>
  <entry>
    <title>From source</title>
    <source>
      <id>urn:src</id>
      <title>Origin</title>
      <updated>2006-01-04T00:00:00Z</updated>
    </source>
    <summary>Summary only</summary>
  </entry>
</feed>`

const rdfXML = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:enc="http://purl.oclc.org/net/rss_2.0/enc#">
  <channel rdf:about="http://example.com/rdf">
    <title>RDF Feed</title>
    <link>http://example.com/</link>
    <description>RDF description</description>
    <dc:language>de</dc:language>
    <dc:rights>Public</dc:rights>
    <dc:date>2006-01-02T15:04:05Z</dc:date>
    <dc:publisher>Pub Inc</dc:publisher>
    <dc:subject>channel-subject</dc:subject>
  </channel>
  <image rdf:about="http://example.com/img.png">
    <title>RDF Image</title>
    <url>http://example.com/img.png</url>
    <link>http://example.com/</link>
  </image>
  <item rdf:about="http://example.com/item1">
    <title>Item One</title>
    <link>http://example.com/item1</link>
    <description>Item one text</description>
    <dc:creator>Alice</dc:creator>
    <dc:date>2006-01-02T10:00:00-05:00</dc:date>
    <enc:enclosure rdf:resource="http://example.com/a.mp3" enc:type="audio/mpeg" enc:length="42"/>
  </item>
  <item rdf:about="http://example.com/item2">
    <title>Item Two</title>
    <dc:subject>own-subject</dc:subject>
  </item>
</rdf:RDF>`
