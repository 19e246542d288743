// Package generator produces the synthetic names and message bodies used
// to populate a simulation.
package generator

import "math/rand/v2"

var firstNames = []string{
	"Ana", "Alicia", "Amalia", "Adela", "Alba", "Alejandro", "Alberto", "Alfonso", "Aaron", "Alfredo",
	"Beatriz", "Blanca", "Begoña", "Belén", "Bienvenida", "Braulio", "Bernardo", "Blas", "Bartolomé", "Bertín",
	"Carmen", "Cecilia", "Concha", "Claudia", "Cristina", "Cristóbal", "César", "Carlos", "Cayetano", "Constantino",
	"Diana", "Débora", "Dolores", "Dora", "Dámaris", "Darío", "Daniel", "David", "Diego", "Damián",
	"Elena", "Ester", "Elisa", "Eva", "Elvira", "Ernesto", "Ezequiel", "Eugenio", "Eulogio", "Elián",
	"Francisca", "Felisa", "Florentina", "Fátima", "Florinda", "Felipe", "Francisco", "Fernando", "Feliciano", "Félix",
	"Gemma", "Gisella", "Genoveva", "Ginebra", "Gilda", "Gabriel", "Gonzalo", "Gregorio", "Ginés", "Guzmán",
	"Helena", "Heidi", "Herminia", "Helga", "Hilaria", "Hipólito", "Higinio", "Hernán", "Humberto", "Hermes",
	"Inmaculada", "Isabel", "Irene", "Itziar", "Inés", "Ildefonso", "Iván", "Ismael", "Iñaki", "Ignacio",
	"Julia", "Jennifer", "Jacinta", "Jessica", "Judith", "José", "Juan", "Jorge", "Jesús", "Julián",
	"Laura", "Lucía", "Lola", "Leonor", "Lidia", "Lucas", "Lorenzo", "Leopoldo", "Leandro", "Lázaro",
	"María", "Mara", "Marta", "Marina", "Mercedes", "Miguel", "Manuel", "Mariano", "Marcos", "Marcelo",
	"Nuria", "Natalia", "Nerea", "Nieves", "Noelia", "Nuño", "Narciso", "Néstor", "Nicolás", "Noé",
	"Olvido", "Ofelia", "Olivia", "Olga", "Olimpia", "Octavio", "Olegario", "Oriol", "Oscar", "Omar",
	"Paula", "Penélope", "Pilar", "Paloma", "Patricia", "Pablo", "Pedro", "Pascual", "Pelayo", "Pepe",
	"Raquel", "Rocío", "Ruth", "Rebeca", "Rosa", "Roberto", "Rodrigo", "Ricardo", "Ramón", "Rubén",
	"Sofía", "Susana", "Sara", "Soledad", "Silvia", "Sergio", "Salvador", "Sancho", "Sebastián", "Samuel",
	"Trinidad", "Teresa", "Tamara", "Tina", "Tecla", "Teodoro", "Tomás", "Tristán", "Tadeo", "Tobías",
	"Úrsula", "Uxue", "Unax", "Unai", "Verónica", "Virginia", "Violeta", "Victoria", "Víctor", "Vicente", "Valentín",
}

var surnames = []string{
	"Sánchez", "Fernández", "González", "López", "García", "Pérez", "Martínez", "Montesinos", "Navarro", "Jiménez",
	"Vélez", "Ruiz", "Peñalver", "Soto", "Valero", "Pallarés", "Nadal", "Moya", "Hernández", "Ros", "Castejón",
	"Noguera", "Otero", "Herrera", "Alsina", "Bueno", "Reyes", "Barceló", "Aguirre", "Cortés", "Pizarro", "Dols",
	"Manrique", "Alburquerque", "Asencio", "Arnaldos", "Cegarra", "Meroño", "Mercader", "Maturana", "Villada",
	"Melero", "Saura", "Ferrándiz", "Anguita", "Garzón", "Iglesias", "Rivera", "Blanco", "Briones", "Cayuela",
	"Boyero", "Hidalgo", "Torres", "Valenzuela", "Blaya", "Salas", "Alcaraz", "Albaladejo", "Lorca", "Goya",
	"Velázquez", "Vázquez", "Segura", "Fuentes", "Montero", "Suárez", "Altozano", "Otón", "Alarcón", "Cabañero",
	"Pedreño", "Díaz", "Díez", "Lajarín", "Mora", "Morales", "Medrano", "Cruz", "Castro", "Rodríguez", "Ortín",
	"Velasco", "Méndez", "Casal", "Muñoz", "Casas", "Ortiz", "Rico", "Herrán", "Lorente", "Tortosa", "Merlo",
	"Albarracín", "Gutiérrez", "Tejón", "Guirao", "Montes", "Sevilla", "Gómez", "Expósito", "Cebrián", "Calleja",
	"Canales", "Cardeñosa", "Casasola", "Rueda", "Adánez", "Lastra", "Calvo", "Poveda", "Alonso", "Cuevas",
}

// Names builds "First Surname" pairs from fixed pools.
type Names struct {
	rng *rand.Rand
}

// NewNames uses rng for picks, or the global source when rng is nil.
func NewNames(rng *rand.Rand) Names {
	return Names{rng: rng}
}

func (n Names) RandomName() string {
	return pick(n.rng, firstNames) + " " + pick(n.rng, surnames)
}

func pick(rng *rand.Rand, pool []string) string {
	if rng == nil {
		return pool[rand.IntN(len(pool))]
	}
	return pool[rng.IntN(len(pool))]
}
