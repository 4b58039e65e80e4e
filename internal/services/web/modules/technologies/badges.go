package technologies

// Badge is one technology shown on the page as an externally hosted image.
type Badge struct {
	Name     string
	ImageURL string
	AltText  string
}

const shieldsStyle = "?style=for-the-badge"

// badges is the display order of the page. Image URLs point at
// img.shields.io and are referenced, never fetched, by the server.
var badges = []Badge{
	{Name: "Python", ImageURL: "https://img.shields.io/badge/Python-3776AB" + shieldsStyle + "&logo=python&logoColor=white", AltText: "Python"},
	{Name: "Django", ImageURL: "https://img.shields.io/badge/Django-092E20" + shieldsStyle + "&logo=django&logoColor=white", AltText: "Django"},
	{Name: "Django REST Framework", ImageURL: "https://img.shields.io/badge/Django%20REST%20Framework-092E20" + shieldsStyle + "&logo=django&logoColor=white", AltText: "Django REST Framework"},
	{Name: "Djoser", ImageURL: "https://img.shields.io/badge/Djoser-092E20" + shieldsStyle + "&logo=django&logoColor=white", AltText: "Djoser"},
	{Name: "SQLite", ImageURL: "https://img.shields.io/badge/SQLite-003B57" + shieldsStyle + "&logo=sqlite&logoColor=white", AltText: "SQLite"},
	{Name: "Postman", ImageURL: "https://img.shields.io/badge/Postman-FF6C37" + shieldsStyle + "&logo=postman&logoColor=white", AltText: "Postman"},
	{Name: "PostgreSQL", ImageURL: "https://img.shields.io/badge/PostgreSQL-4169E1" + shieldsStyle + "&logo=postgresql&logoColor=white", AltText: "PostgreSQL"},
	{Name: "Gunicorn", ImageURL: "https://img.shields.io/badge/Gunicorn-499848" + shieldsStyle + "&logo=gunicorn&logoColor=white", AltText: "Gunicorn"},
	{Name: "Nginx", ImageURL: "https://img.shields.io/badge/Nginx-009639" + shieldsStyle + "&logo=nginx&logoColor=white", AltText: "Nginx"},
	{Name: "React", ImageURL: "https://img.shields.io/badge/React-61DAFB" + shieldsStyle + "&logo=react&logoColor=black", AltText: "React"},
	{Name: "Docker", ImageURL: "https://img.shields.io/badge/Docker-2496ED" + shieldsStyle + "&logo=docker&logoColor=white", AltText: "Docker"},
	{Name: "GitHub Actions", ImageURL: "https://img.shields.io/badge/GitHub_Actions-2088FF" + shieldsStyle + "&logo=github-actions&logoColor=white", AltText: "GitHub Actions"},
}

// Badges returns a copy of the badge table in display order.
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}
